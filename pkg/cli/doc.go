// Package cli implements menuctl, the command-line client for the menu API.
//
// # Commands
//
//	menuctl list
//	menuctl get <id>
//	menuctl create --name NAME --price PRICE [--description TEXT]
//	menuctl create --file item.yaml
//	menuctl update <id> [--name NAME] [--price PRICE] [--description TEXT] [--clear-description]
//	menuctl delete <id>
//
// Server errors are returned as structured errors carrying the code that
// corresponds to the HTTP status, so "Menu item not found" surfaces as a
// NOT_FOUND error.
//
// # Global Flags
//
//	--server, -s   API server URL (env MENU_SERVER, default http://localhost:5000)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//
// # Exit Codes
//
//	0  Success
//	1  Any error
package cli
