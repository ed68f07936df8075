/*
Copyright © 2026 caldernotes
*/
package main

import "github.com/caldernotes/vaultgen/cmd"

func main() {
	cmd.Execute()
}
