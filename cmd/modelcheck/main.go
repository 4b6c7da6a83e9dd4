// Package main provides the modelcheck CLI for validating model build configurations.
package main

func main() {
	Execute()
}
