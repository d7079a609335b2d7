package main

import "github.com/oshokin/shocker-link/cmd/shocker-link/cmd"

func main() {
	cmd.Execute()
}
