// +build js,!cordova

package main

import "sync"

func initCordova(_ *sync.WaitGroup) {}
