package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gosuri/uilive"
	"github.com/webbmaffian/go-ds/hashtable"
)

const keys = 5000

func main() {
	t, err := hashtable.NewWithHasher[string, int](4, 0.75, hashtable.StringHasher[string]{})

	if err != nil {
		log.Fatal(err)
	}

	writer := uilive.New()

	length := writer.Newline()
	capacity := writer.Newline()
	loadFactor := writer.Newline()

	writer.Start()

	for i := 0; i < keys; i++ {
		t.Set(fmt.Sprintf("key-%d", i), i)

		if i%100 == 0 {
			fmt.Fprintf(length, "Length: %d\n", t.Len())
			fmt.Fprintf(capacity, "Capacity: %d\n", t.Cap())
			fmt.Fprintf(loadFactor, "Load factor: %.3f / %.3f\n", t.LoadFactor(), t.LoadFactorThreshold())
			time.Sleep(10 * time.Millisecond)
		}
	}

	writer.Stop()

	for i := 0; i < keys; i += 2 {
		if err = t.Delete(fmt.Sprintf("key-%d", i)); err != nil {
			log.Fatal(err)
		}
	}

	log.Println(t.Len(), "items left in", t.Cap(), "buckets")

	small := hashtable.FromMap(map[string]int{"a": 1, "b": 2})
	log.Println(small.Union(hashtable.FromMap(map[string]int{"b": 3, "c": 4})))
}
