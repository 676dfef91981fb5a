// Package main provides the gazette command line interface.
package main

func main() {
	Execute()
}
