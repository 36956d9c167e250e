package main

import "nativecheck/internal/cli"

func main() {
    cli.Execute()
}
