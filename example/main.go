package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/javi11/arjstream"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <archive>.arj", os.Args[0])
	}

	info, err := arjstream.List(os.Args[1])
	if err != nil {
		log.Fatalf("error listing archive: %v", err)
	}
	b, _ := json.MarshalIndent(info, "", "  ")
	fmt.Println(string(b))
}
