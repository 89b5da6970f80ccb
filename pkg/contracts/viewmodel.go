package contracts

import "reflect"

// ViewModel holds UI state. OnCleared is called when the owning store is cleared.
type ViewModel interface {
	OnCleared()
}

type ViewModelFactory interface {
	Create(t reflect.Type) (ViewModel, error)
}

type ViewModelStore interface {
	Get(t reflect.Type) (ViewModel, bool)
	Put(t reflect.Type, vm ViewModel)
	Clear()
	Len() int
}
