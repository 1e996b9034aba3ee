// Package cmdline builds ready-to-run argument vectors from command strings
// such as "adb devices" or "gradlew.bat assembleDebug".
//
// The first word is replaced by its resolved executable path so the process
// collaborator can start it without relying on its own PATH. Command strings
// are split on single spaces only: quoting and escaping are not supported,
// and arguments cannot contain spaces.
package cmdline
