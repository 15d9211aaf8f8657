// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log"

	settings "github.com/jtheisen/server-settings"
)

func main() {
	// optional settings with defaults never fail
	port := settings.IntOr("Port", 8080)
	debug := settings.BoolOr("Debug", false)

	// required settings fail when no source has a value
	apiKey, err := settings.String("ApiKey")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("port=%d debug=%t apiKey=%s\n", port, debug, apiKey)
}
