package main

import "github.com/jakubciszak/mealbook-cli/cmd/mealbook"

func main() {
	mealbook.Execute()
}
