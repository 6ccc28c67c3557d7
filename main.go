// main.go
package main

import "github.com/ariebrainware/inet-clinic/cmd"

func main() {
	cmd.Execute()
}
