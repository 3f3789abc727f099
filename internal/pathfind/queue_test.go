package pathfind

import (
	"math/rand"
	"sort"
	"testing"
)

// queueImplementations drives every test across both queue variants.
var queueImplementations = map[string]func() Queue{
	"binary":  func() Queue { return NewBinaryQueue() },
	"pairing": func() Queue { return NewPairingQueue() },
}

func TestEmptyQueue(t *testing.T) {
	for name, newQueue := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			queue := newQueue()
			if queue.Len() != 0 {
				t.Errorf("Expected empty queue, got length %d", queue.Len())
			}
			if _, _, ok := queue.Pop(); ok {
				t.Error("Expected Pop on empty queue to report not ok")
			}
		})
	}
}

func TestSingleItem(t *testing.T) {
	for name, newQueue := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			queue := newQueue()
			queue.Set(7, 42)
			if queue.Len() != 1 {
				t.Errorf("Expected length 1, got %d", queue.Len())
			}
			vertex, cost, ok := queue.Pop()
			if !ok || vertex != 7 || cost != 42 {
				t.Errorf("Expected (7, 42, true), got (%d, %d, %v)", vertex, cost, ok)
			}
			if _, _, ok := queue.Pop(); ok {
				t.Error("Expected queue to be exhausted")
			}
		})
	}
}

// sequences returns cost orderings that exercise different heap shapes.
func sequences(length int) map[string][]int {
	linear := make([]int, length)
	for i := range linear {
		linear[i] = i
	}

	organpipe := make([]int, 0, length)
	peak := length / 4 * 3
	for i := 0; i < peak; i++ {
		organpipe = append(organpipe, i)
	}
	for i := peak; i > 0; i -= 3 {
		organpipe = append(organpipe, i)
	}

	interleaved := make([]int, 0, length)
	for i := 0; i < length/2; i++ {
		interleaved = append(interleaved, i, length/2+i)
	}

	shifted := make([]int, 0, length)
	for i := length / 10; i < length; i++ {
		shifted = append(shifted, i)
	}
	for i := 0; i < length/10; i++ {
		shifted = append(shifted, i)
	}

	reversed := make([]int, length)
	for i := range reversed {
		reversed[i] = length - i
	}

	return map[string][]int{
		"linear":      linear,
		"organpipe":   organpipe,
		"interleaved": interleaved,
		"shifted":     shifted,
		"reversed":    reversed,
	}
}

func TestPopOrder(t *testing.T) {
	for name, newQueue := range queueImplementations {
		for sequenceName, sequence := range sequences(500) {
			t.Run(name+"/"+sequenceName, func(t *testing.T) {
				queue := newQueue()
				for vertex, cost := range sequence {
					queue.Set(vertex, cost)
				}

				popped := make([]int, 0, len(sequence))
				for {
					_, cost, ok := queue.Pop()
					if !ok {
						break
					}
					popped = append(popped, cost)
				}

				if len(popped) != len(sequence) {
					t.Fatalf("Expected %d pops, got %d", len(sequence), len(popped))
				}
				if !sort.IntsAreSorted(popped) {
					t.Error("Queue did not pop costs in ascending order")
				}
			})
		}
	}
}

func TestDecreaseKey(t *testing.T) {
	for name, newQueue := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			queue := newQueue()
			queue.Set(1, 10)
			queue.Set(2, 20)
			queue.Set(3, 30)

			// Lowering vertex 3 below everything else moves it to the front.
			queue.Set(3, 5)
			if vertex, cost, _ := queue.Pop(); vertex != 3 || cost != 5 {
				t.Errorf("Expected (3, 5) after decrease, got (%d, %d)", vertex, cost)
			}
			if vertex, _, _ := queue.Pop(); vertex != 1 {
				t.Errorf("Expected vertex 1 next, got %d", vertex)
			}
			if vertex, _, _ := queue.Pop(); vertex != 2 {
				t.Errorf("Expected vertex 2 last, got %d", vertex)
			}
		})
	}
}

func TestDecreaseKeyRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, newQueue := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			queue := newQueue()
			final := make(map[int]int)
			for vertex := 0; vertex < 300; vertex++ {
				cost := 1000 + rng.Intn(1000)
				queue.Set(vertex, cost)
				final[vertex] = cost
			}
			// Lower a random subset, some of them twice.
			for i := 0; i < 400; i++ {
				vertex := rng.Intn(300)
				if reduced := final[vertex] - rng.Intn(200); reduced < final[vertex] {
					queue.Set(vertex, reduced)
					final[vertex] = reduced
				}
			}

			previous := -1 << 31
			seen := make(map[int]bool)
			for {
				vertex, cost, ok := queue.Pop()
				if !ok {
					break
				}
				if seen[vertex] {
					t.Fatalf("Vertex %d popped twice", vertex)
				}
				seen[vertex] = true
				if cost != final[vertex] {
					t.Errorf("Vertex %d popped with cost %d, expected %d", vertex, cost, final[vertex])
				}
				if cost < previous {
					t.Errorf("Cost %d popped after %d", cost, previous)
				}
				previous = cost
			}
			if len(seen) != 300 {
				t.Errorf("Expected 300 pops, got %d", len(seen))
			}
		})
	}
}
