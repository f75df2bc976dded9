package main

import "github.com/mabhi256/jclassfile/cmd"

func main() {
	cmd.Execute()
}
