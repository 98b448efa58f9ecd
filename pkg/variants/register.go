package variants

import (
	"github.com/arthur-debert/staticize/pkg/shape"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

// RegisterOption registers Option[T] as its own counterpart. T must be
// self-contained.
func RegisterOption[T any]() error {
	return RegisterOptionAs[T, T]()
}

// RegisterOptionAs registers Static(Option[T]) = Option[S], where S is
// the counterpart of T
func RegisterOptionAs[T, S any]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[S]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[Option[T]](), staticize.TypeFor[Option[S]](), shape.Optional)
}

// RegisterResult registers Result[T, E] as its own counterpart. Both
// components must be self-contained.
func RegisterResult[T, E any]() error {
	return RegisterResultAs[T, T, E, E]()
}

// RegisterResultAs registers Static(Result[T, E]) = Result[ST, SE]
func RegisterResultAs[T, ST, E, SE any]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[ST]()); err != nil {
		return err
	}
	if err := staticize.CheckProjection(staticize.TypeFor[E](), staticize.TypeFor[SE]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[Result[T, E]](), staticize.TypeFor[Result[ST, SE]](), shape.Result)
}

// RegisterFlow registers Flow[B, C] as its own counterpart. Both
// components must be self-contained.
func RegisterFlow[B, C any]() error {
	return RegisterFlowAs[B, B, C, C]()
}

// RegisterFlowAs registers Static(Flow[B, C]) = Flow[SB, SC]
func RegisterFlowAs[B, SB, C, SC any]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[B](), staticize.TypeFor[SB]()); err != nil {
		return err
	}
	if err := staticize.CheckProjection(staticize.TypeFor[C](), staticize.TypeFor[SC]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[Flow[B, C]](), staticize.TypeFor[Flow[SB, SC]](), shape.Flow)
}

// RegisterBound registers Bound[T] as its own counterpart. T must be
// self-contained.
func RegisterBound[T any]() error {
	return RegisterBoundAs[T, T]()
}

// RegisterBoundAs registers Static(Bound[T]) = Bound[S]
func RegisterBoundAs[T, S any]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[S]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[Bound[T]](), staticize.TypeFor[Bound[S]](), shape.Bound)
}
