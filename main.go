package main

import (
	"smartedu.io/infrastructure"
	"smartedu.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
