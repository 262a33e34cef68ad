// Package uuidify holds the public contracts of the uuidify renamer:
// the FileHandler invoked for every traversed file, the Approver that
// confirms a rename, the Logger, run Options and the exit code mapping
// used by the command line.
package uuidify
