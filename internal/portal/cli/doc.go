// Package cli implements the interactive shell of the college portal
// client. It wires the gateway client, the persisted session store and the
// route guard together and exposes them as simple commands (login, logout,
// register, open, whoami).
package cli
