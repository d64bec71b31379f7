package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/devblok/prism/device"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	surface, err := device.OpenSurface(device.Options{
		Title:  "prismcli",
		Width:  1,
		Height: 1,
		Hidden: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer surface.Destroy()

	bytes, err := json.Marshal(surface.Context().Info())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", bytes)
}
