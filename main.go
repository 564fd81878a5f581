/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/
package main

import "github.com/fixhub-es/tradexdb/cmd"

func main() {
	cmd.Execute()
}
