package main

import "github.com/priyanshujain/buildsource/cmd"

func main() {
	cmd.Execute()
}
