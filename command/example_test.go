package command_test

import (
	"fmt"

	"github.com/kbukum/prockit/command"
)

func ExampleBuilder_String() {
	b := command.New("java", "-jar", "a.jar")
	b.Env["JAVA_OPTS"] = "a value"
	fmt.Println(b.String())
	// Output: JAVA_OPTS="a value" java -jar a.jar
}

func ExampleBuilder_AddKeyValuePair() {
	b := command.New("java").AddKeyValuePair("", "java.awt.headless", "true")
	fmt.Println(b.QuotedString())
	// Output: java -Djava.awt.headless=true
}

func ExampleBuilder_ToWindowsCommand() {
	b := command.New("type", "%PATH%").ToWindowsCommand(true)
	fmt.Println(b.Args()[2])
	// Output: "type "%"P"ATH%" && exit %%ERRORLEVEL%%"
}
