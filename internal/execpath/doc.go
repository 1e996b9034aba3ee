// Package execpath turns a bare command name such as "adb" or "npm" into the
// full path of the file the OS would run.
//
// IDE-hosted processes often inherit a PATH that differs from the user's
// shell, and on Windows many JS tools ship as .cmd shims, so a bare name is
// not enough to start a process. On Windows hosts a name without a known
// extension is tried as name.exe, name.cmd, name.bat and finally name, in
// that order. Elsewhere the name is looked up unchanged.
//
// Not finding an executable is a normal outcome: lookups return ("", false)
// and never an error.
package execpath
