// +build js,cordova

package main

import (
	"sync"

	"github.com/flimzy/log"
)

func initCordova(wg *sync.WaitGroup) {
	log.Debug("Initializing Cordova extensions\n")
	wg.Add(1)
	document.Call("addEventListener", "deviceready", wg.Done, false)
}
