package main

import (
	"fmt"
	"os"

	app2 "github.com/IT-Nick/quizbot/internal/app"
)

func main() {
	fmt.Println("app starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/values_example.yaml"
	}

	app, err := app2.NewApp(configPath)
	if err != nil {
		panic(err)
	}
	defer app.Close()

	if err := app.ListenAndServeTelegram(); err != nil {
		panic(err)
	}
}
