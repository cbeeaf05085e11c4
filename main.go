package main

import "github.com/mfelsing/hourburn/cmd"

func main() {
	cmd.Execute()
}
