/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/imagegrid/pexels-proxy/cmd"

// @title           Pexels Search Proxy
// @version         1.0.0
// @description     Server-side proxy for the Pexels image search API with a static frontend
// @contact.name    API Support
// @contact.url     https://github.com/imagegrid/pexels-proxy
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
