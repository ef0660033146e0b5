package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/sivanaveen080/biryani-for-lunch/internal/sheets"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
)

type stubSheets struct {
	sheets.Service
	lastInput sheets.CreateOrderInput
	id        int64
	err       error
}

func (s *stubSheets) CreateOrder(ctx context.Context, input sheets.CreateOrderInput) (int64, error) {
	s.lastInput = input
	return s.id, s.err
}

type fakeCounter struct {
	value int64
	err   error
}

func (f *fakeCounter) Incr(ctx context.Context, key string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.value++
	return f.value, nil
}

func (f *fakeCounter) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (f *fakeCounter) CounterKey(name string) string { return "bfl:counter:" + name }

func TestRemoteAllocatorForwardsSubmission(t *testing.T) {
	remote := &stubSheets{id: 12}
	alloc, err := NewRemoteAllocator(remote)
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}

	sub := Submission{
		CustomerName:   "Asha",
		CustomerMobile: "9876543210",
		Lines: []SubmissionLine{
			{Name: "Veg Noodles", Quantity: 2, LineTotal: 180},
		},
		ItemsTotal:   180,
		PayableTotal: 180,
	}

	id, err := alloc.AllocateOrderID(context.Background(), sub)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected id 12, got %d", id)
	}
	if remote.lastInput.Name != "Asha" || remote.lastInput.ItemsTotal != 180 {
		t.Fatalf("submission not forwarded: %+v", remote.lastInput)
	}
	if remote.lastInput.Items != "Veg Noodles x2 - ₹180\n" {
		t.Fatalf("unexpected items text %q", remote.lastInput.Items)
	}
}

func TestLocalAllocatorIncrementsCounter(t *testing.T) {
	counter := &fakeCounter{value: 41}
	alloc, err := NewLocalAllocator(counter)
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}

	id, err := alloc.AllocateOrderID(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	next, err := alloc.AllocateOrderID(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if next != 43 {
		t.Fatalf("counter must be monotonic, got %d", next)
	}
}

func TestLocalAllocatorWrapsCounterFailure(t *testing.T) {
	alloc, err := NewLocalAllocator(&fakeCounter{err: errors.New("redis down")})
	if err != nil {
		t.Fatalf("new allocator: %v", err)
	}

	_, err = alloc.AllocateOrderID(context.Background(), Submission{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestAllocatorConstructorsValidate(t *testing.T) {
	if _, err := NewRemoteAllocator(nil); err == nil {
		t.Fatal("nil sheets service must error")
	}
	if _, err := NewLocalAllocator(nil); err == nil {
		t.Fatal("nil counter must error")
	}
}
