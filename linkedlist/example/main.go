package main

import (
	"errors"
	"log"

	"github.com/webbmaffian/go-ds/linkedlist"
)

func main() {
	l := linkedlist.New("b", "d")

	l.AppendLeft("a")
	l.Append("f")
	l.Insert("c", 2)
	l.InsertBefore("f", "e")
	l.InsertAfter("f", "g")

	log.Println(l, "-", l.Len(), "items")
	log.Printf("%#v", l)

	for l.Len() > 0 {
		val, err := l.PopLeft()

		if err != nil {
			log.Fatal(err)
		}

		log.Println("popped", val)
	}

	if err := l.Remove("a"); errors.Is(err, linkedlist.ErrEmpty) {
		log.Println(err)
	}
}
