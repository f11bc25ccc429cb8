package main

import "github.com/kashifrazzaqui/lifeline/cmd"

func main() {
	cmd.Execute()
}
