package staticize

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/arthur-debert/staticize/pkg/errors"
	"github.com/arthur-debert/staticize/pkg/shape"
)

// Widget is a self-contained type for testing
type Widget struct {
	ID   int
	Name string
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if reg.Count() != len(shape.LeafTypes()) {
		t.Errorf("new registry should hold the builtin leaves, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := NewRegistry()
	widgetType := reflect.TypeOf(Widget{})

	t.Run("register self-contained type", func(t *testing.T) {
		before := reg.Count()
		err := reg.Register(widgetType, widgetType)

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != before+1 {
			t.Errorf("Count() = %d, want %d", reg.Count(), before+1)
		}
	})

	t.Run("register with nil type", func(t *testing.T) {
		err := reg.Register(nil, widgetType)

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with nil source should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register identical pair is idempotent", func(t *testing.T) {
		err := reg.Register(widgetType, widgetType)

		if err != nil {
			t.Errorf("re-registering the identical pair should be a no-op, got %v", err)
		}
	})

	t.Run("register conflicting pair", func(t *testing.T) {
		err := reg.Register(widgetType, reflect.TypeOf(""))

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("conflicting re-registration should return ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("register pair with non-self-contained static", func(t *testing.T) {
		type gadget struct{ N int }
		err := reg.Register(reflect.TypeOf(gadget{}), reflect.TypeOf(func() {}))

		if !errors.IsErrorCode(err, errors.ErrNotSelfContained) {
			t.Errorf("unresolvable static side should return ErrNotSelfContained, got %v", err)
		}
	})
}

func TestRegisterInvalidatesMemo(t *testing.T) {
	reg := NewRegistry()
	ptr := reflect.TypeOf((*uint32)(nil))
	doublePtr := reflect.TypeOf((**uint32)(nil))

	static, err := reg.Resolve(doublePtr)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if static != doublePtr {
		t.Fatalf("Resolve(**uint32) = %v, want **uint32", static)
	}

	// A later rule for the pointee must win over the memoized
	// structural resolution
	if err := reg.Register(ptr, reflect.TypeOf("")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	static, err = reg.Resolve(doublePtr)
	if err != nil {
		t.Fatalf("Resolve() after registration error = %v", err)
	}
	if want := reflect.TypeOf((*string)(nil)); static != want {
		t.Errorf("Resolve(**uint32) = %v, want %v", static, want)
	}
}

func TestRegisterPairShape(t *testing.T) {
	reg := NewRegistry()
	type byteWindow struct{ Buf []byte }
	src := reflect.TypeOf(byteWindow{})

	if err := reg.Register(src, reflect.TypeOf([]byte(nil))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for _, e := range reg.Entries() {
		if e.Source == src {
			if e.Shape != shape.Sequence {
				t.Errorf("pair registration shape = %v, want sequence", e.Shape)
			}
			return
		}
	}
	t.Fatal("registered pair not present in Entries()")
}

func TestHas(t *testing.T) {
	reg := NewRegistry()
	widgetType := reflect.TypeOf(Widget{})

	if reg.Has(widgetType) {
		t.Error("Has() should be false before registration")
	}

	if err := reg.Register(widgetType, widgetType); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if !reg.Has(widgetType) {
		t.Error("Has() should be true after registration")
	}
}

func TestLookup(t *testing.T) {
	reg := NewRegistry()

	entry, ok := reg.Lookup("uint32")
	if !ok {
		t.Fatal("Lookup(uint32) should find the builtin leaf")
	}

	if entry.Static != reflect.TypeOf(uint32(0)) {
		t.Errorf("Lookup(uint32) static = %v, want uint32", entry.Static)
	}

	if entry.Shape != shape.Leaf {
		t.Errorf("Lookup(uint32) shape = %v, want leaf", entry.Shape)
	}

	if _, ok := reg.Lookup("no.such/type.Missing"); ok {
		t.Error("Lookup() of an unregistered name should not succeed")
	}
}

func TestEntriesSorted(t *testing.T) {
	reg := NewRegistry()

	entries := reg.Entries()
	if len(entries) != reg.Count() {
		t.Fatalf("Entries() length = %d, want %d", len(entries), reg.Count())
	}

	for i := 1; i < len(entries); i++ {
		if CanonicalName(entries[i-1].Source) > CanonicalName(entries[i].Source) {
			t.Fatalf("Entries() not sorted at %d: %s > %s",
				i, CanonicalName(entries[i-1].Source), CanonicalName(entries[i].Source))
		}
	}
}

func TestReset(t *testing.T) {
	reg := NewRegistry()
	widgetType := reflect.TypeOf(Widget{})

	if err := reg.Register(widgetType, widgetType); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	reg.Reset()

	if reg.Has(widgetType) {
		t.Error("Reset() should drop non-builtin registrations")
	}

	if reg.Count() != len(shape.LeafTypes()) {
		t.Errorf("Reset() should restore the builtins, got count %d", reg.Count())
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			// Distinct array lengths give distinct types to register
			src := reflect.ArrayOf(n, reflect.TypeOf(0))
			_ = reg.Register(src, src)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = reg.Resolve(reflect.TypeOf(uint64(0)))
			_ = reg.Entries()
			_ = reg.Count()
		}()
	}
	wg.Wait()

	if reg.Count() != len(shape.LeafTypes())+10 {
		t.Errorf("Count() after concurrent registration = %d, want %d",
			reg.Count(), len(shape.LeafTypes())+10)
	}
}

func TestListSorted(t *testing.T) {
	reg := NewRegistry()

	names := reg.List()
	if len(names) != reg.Count() {
		t.Fatalf("List() length = %d, want %d", len(names), reg.Count())
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("List() not sorted: %s > %s", names[i-1], names[i])
		}
	}
}

func ExampleRegistry_Resolve() {
	reg := NewRegistry()

	static, _ := reg.Resolve(reflect.TypeOf((*uint32)(nil)))
	fmt.Println(static)
	// Output: *uint32
}
