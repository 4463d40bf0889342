/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/FamilyWing/cmd"
	"github.com/josephgoksu/FamilyWing/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
