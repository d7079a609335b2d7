package main

import "github.com/oshokin/shocker-link/cmd/shocker-ctl/cmd"

func main() {
	cmd.Execute()
}
