package cookie

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Document holds the cookies visible to a page. Like a browser's
// document.cookie, assigning a Set-Cookie line adds, replaces or expires one
// cookie, and reading returns every live cookie as "name=value; name=value".
type Document struct {
	mu      sync.Mutex
	cookies []*http.Cookie
	now     func() time.Time
}

var (
	defaultDocument     *Document
	defaultDocumentOnce sync.Once
)

// NewDocument creates an empty cookie document
func NewDocument() *Document {
	return &Document{now: time.Now}
}

// DefaultDocument returns the process-wide cookie document
func DefaultDocument() *Document {
	defaultDocumentOnce.Do(func() {
		defaultDocument = NewDocument()
	})

	return defaultDocument
}

// SetClock replaces the time source used for expiry checks
func (d *Document) SetClock(now func() time.Time) {
	d.mu.Lock()
	d.now = now
	d.mu.Unlock()
}

// SetCookie applies one Set-Cookie line. A cookie whose expiry is not in the
// future, or whose Max-Age is negative, is removed.
func (d *Document) SetCookie(line string) error {
	c, err := http.ParseSetCookie(line)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}
	if c.Path == "" {
		c.Path = "/"
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if c.MaxAge > 0 {
		c.Expires = d.now().Add(time.Duration(c.MaxAge) * time.Second)
	}

	idx := d.index(c.Name, c.Path)
	if d.expired(c) {
		if idx >= 0 {
			d.cookies = append(d.cookies[:idx], d.cookies[idx+1:]...)
		}
		return nil
	}

	if idx >= 0 {
		d.cookies[idx] = c
		return nil
	}
	d.cookies = append(d.cookies, c)

	return nil
}

// Cookie returns the live cookies in creation order
func (d *Document) Cookie() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.purge()

	pairs := make([]string, 0, len(d.cookies))
	for _, c := range d.cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}

	return strings.Join(pairs, "; ")
}

// Load adds the cookies of a Cookie request header as session cookies
func (d *Document) Load(header string) error {
	cookies, err := http.ParseCookie(header)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	for _, c := range cookies {
		if err := d.SetCookie(c.Name + "=" + c.Value + "; path=/"); err != nil {
			return err
		}
	}

	return nil
}

// Cookies returns copies of the live cookies, suitable for Set-Cookie headers
func (d *Document) Cookies() []*http.Cookie {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.purge()

	out := make([]*http.Cookie, 0, len(d.cookies))
	for _, c := range d.cookies {
		cp := *c
		out = append(out, &cp)
	}

	return out
}

func (d *Document) index(name, path string) int {
	for i, c := range d.cookies {
		if c.Name == name && c.Path == path {
			return i
		}
	}
	return -1
}

func (d *Document) expired(c *http.Cookie) bool {
	if c.MaxAge < 0 {
		return true
	}
	return !c.Expires.IsZero() && !c.Expires.After(d.now())
}

func (d *Document) purge() {
	live := d.cookies[:0]
	for _, c := range d.cookies {
		if !d.expired(c) {
			live = append(live, c)
		}
	}
	for i := len(live); i < len(d.cookies); i++ {
		d.cookies[i] = nil
	}
	d.cookies = live
}
