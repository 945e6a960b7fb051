// Package config loads the liftlog configuration file.
//
// Configuration lives at ~/.config/liftlog/config.toml:
//
//	server_url = "127.0.0.1:6942"
//	log_dir = "~/.local/state/liftlog"
//	log_level = "info"
//
// Every field is optional; a missing file is not an error, so the client
// works out of the box against a store on the default port. Tilde paths are
// expanded. LIFTLOG_SERVER_URL in the environment or a local .env file
// overrides server_url, which keeps development against a scratch server a
// one-line affair.
package config
