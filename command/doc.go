// Package command accumulates arguments, environment variables, and a
// working directory for a process invocation.
//
// Builder methods are nil-safe appends in the spirit of the classic
// argument-list builders: adding a nil slice or an empty collection is a
// no-op rather than an error. Builders are mutable and single-owner; they
// are not safe for concurrent mutation.
//
// # Usage
//
//	cmd := command.New("java", "-jar", "app.jar").
//		Pwd("/srv/app").
//		AddKeyValuePair("", "java.awt.headless", "true")
//	cmd.Env["JAVA_OPTS"] = "-Xmx256m"
//
// Hand the builder to the process package to launch it, or call
// ToWindowsCommand to produce a cmd.exe invocation with shell escaping
// applied.
package command
