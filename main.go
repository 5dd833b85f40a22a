package main

import "github.com/Alok-2331/NutriSnap/cmd/nutrisnap"

func main() {
	nutrisnap.Execute()
}
