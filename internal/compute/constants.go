package compute

// Command types
const (
	CommandSet     = "SET"
	CommandGet     = "GET"
	CommandDel     = "DEL"
	CommandItems   = "ITEMS"
	CommandClear   = "CLEAR"
	CommandSecret  = "SECRET"
	CommandEncode  = "ENCODE"
	CommandDelim   = "DELIM"
	CommandHelp    = "HELP"
	CommandHelpAlt = "?"
)

// Response messages
const (
	ResponseOK    = "OK"
	ResponseEmpty = "(empty)"
)

// HelpMessage lists the available commands
const HelpMessage = `Available commands:
  SET <field> <key> <value> [ttl]  store a JSON value (bare words are strings); ttl like 10m or -1h
  GET <field> <key>                print the stored value
  DEL <field> <key>                remove one item
  ITEMS <field>                    print every item of a field
  CLEAR <field>                    remove every item of a field
  SECRET [passphrase]              set or clear the encryption passphrase
  ENCODE on|off                    toggle percent-encoding of stored payloads
  DELIM <delimiter>                change the field delimiter
  HELP, ?                          show this message`
