/*
Copyright © 2026 Guismus
*/
package main

import "github.com/Guismus/DanjonBot/cmd"

func main() {
	cmd.Execute()
}
