// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import (
	"container/list"
)

// OrderedMap stores key-value pairs in insertion order. Overwriting a key
// keeps its original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

// Element is a positioned key-value pair returned by Front and Back
type Element[K comparable, V any] struct {
	Key   *K
	Value V

	el      *list.Element
	forward bool
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap creates a new OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// its value is replaced in place.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = keyValue[K, V]{key: key, value: val}
		return
	}

	o.store[key] = o.keys.PushBack(keyValue[K, V]{key: key, value: val})
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return e.Value.(keyValue[K, V]).value, true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete will remove the key and its associated value.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}

	o.keys.Remove(e)
	delete(o.store, key)
}

// Count returns the number of keys
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	for e := o.keys.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(keyValue[K, V]).key)
	}

	return keys
}

// Values returns the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.keys.Len())
	for e := o.keys.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.(keyValue[K, V]).value)
	}

	return values
}

// Front returns the oldest (inserted-first) element or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Element[K, V] {
	if o == nil {
		return nil
	}

	return newElement[K, V](o.keys.Front(), true)
}

// Back returns the newest (inserted-last) element or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Element[K, V] {
	if o == nil {
		return nil
	}

	return newElement[K, V](o.keys.Back(), false)
}

// Next returns the following element in iteration direction or nil at the end
func (e *Element[K, V]) Next() *Element[K, V] {
	if e == nil || e.el == nil {
		return nil
	}

	if e.forward {
		return newElement[K, V](e.el.Next(), true)
	}

	return newElement[K, V](e.el.Prev(), false)
}

func newElement[K comparable, V any](el *list.Element, forward bool) *Element[K, V] {
	if el == nil {
		return nil
	}

	kv := el.Value.(keyValue[K, V])

	return &Element[K, V]{
		Key:     &kv.key,
		Value:   kv.value,
		el:      el,
		forward: forward,
	}
}
