package tuple

import (
	"reflect"

	"github.com/arthur-debert/staticize/pkg/shape"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

func registerTuple(src, static reflect.Type, pairs ...[2]reflect.Type) error {
	for _, p := range pairs {
		if err := staticize.CheckProjection(p[0], p[1]); err != nil {
			return err
		}
	}
	return staticize.Default.RegisterAs(src, static, shape.Tuple)
}

// Register1 registers T1[A] as its own counterpart. Every
// component must be self-contained.
func Register1[A any]() error {
	return Register1As[A, A]()
}

// Register1As registers Static(T1[A]) = T1[SA],
// where each S component is the counterpart of its source component
func Register1As[A, SA any]() error {
	return registerTuple(
		typeFor[T1[A]](), typeFor[T1[SA]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()})
}

// Register2 registers T2[A, B] as its own counterpart. Every
// component must be self-contained.
func Register2[A, B any]() error {
	return Register2As[A, A, B, B]()
}

// Register2As registers Static(T2[A, B]) = T2[SA, SB],
// where each S component is the counterpart of its source component
func Register2As[A, SA, B, SB any]() error {
	return registerTuple(
		typeFor[T2[A, B]](), typeFor[T2[SA, SB]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()})
}

// Register3 registers T3[A, B, C] as its own counterpart. Every
// component must be self-contained.
func Register3[A, B, C any]() error {
	return Register3As[A, A, B, B, C, C]()
}

// Register3As registers Static(T3[A, B, C]) = T3[SA, SB, SC],
// where each S component is the counterpart of its source component
func Register3As[A, SA, B, SB, C, SC any]() error {
	return registerTuple(
		typeFor[T3[A, B, C]](), typeFor[T3[SA, SB, SC]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()})
}

// Register4 registers T4[A, B, C, D] as its own counterpart. Every
// component must be self-contained.
func Register4[A, B, C, D any]() error {
	return Register4As[A, A, B, B, C, C, D, D]()
}

// Register4As registers Static(T4[A, B, C, D]) = T4[SA, SB, SC, SD],
// where each S component is the counterpart of its source component
func Register4As[A, SA, B, SB, C, SC, D, SD any]() error {
	return registerTuple(
		typeFor[T4[A, B, C, D]](), typeFor[T4[SA, SB, SC, SD]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()})
}

// Register5 registers T5[A, B, C, D, E] as its own counterpart. Every
// component must be self-contained.
func Register5[A, B, C, D, E any]() error {
	return Register5As[A, A, B, B, C, C, D, D, E, E]()
}

// Register5As registers Static(T5[A, B, C, D, E]) = T5[SA, SB, SC, SD, SE],
// where each S component is the counterpart of its source component
func Register5As[A, SA, B, SB, C, SC, D, SD, E, SE any]() error {
	return registerTuple(
		typeFor[T5[A, B, C, D, E]](), typeFor[T5[SA, SB, SC, SD, SE]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()})
}

// Register6 registers T6[A, B, C, D, E, F] as its own counterpart. Every
// component must be self-contained.
func Register6[A, B, C, D, E, F any]() error {
	return Register6As[A, A, B, B, C, C, D, D, E, E, F, F]()
}

// Register6As registers Static(T6[A, B, C, D, E, F]) = T6[SA, SB, SC, SD, SE, SF],
// where each S component is the counterpart of its source component
func Register6As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF any]() error {
	return registerTuple(
		typeFor[T6[A, B, C, D, E, F]](), typeFor[T6[SA, SB, SC, SD, SE, SF]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()})
}

// Register7 registers T7[A, B, C, D, E, F, G] as its own counterpart. Every
// component must be self-contained.
func Register7[A, B, C, D, E, F, G any]() error {
	return Register7As[A, A, B, B, C, C, D, D, E, E, F, F, G, G]()
}

// Register7As registers Static(T7[A, B, C, D, E, F, G]) = T7[SA, SB, SC, SD, SE, SF, SG],
// where each S component is the counterpart of its source component
func Register7As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG any]() error {
	return registerTuple(
		typeFor[T7[A, B, C, D, E, F, G]](), typeFor[T7[SA, SB, SC, SD, SE, SF, SG]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()})
}

// Register8 registers T8[A, B, C, D, E, F, G, H] as its own counterpart. Every
// component must be self-contained.
func Register8[A, B, C, D, E, F, G, H any]() error {
	return Register8As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H]()
}

// Register8As registers Static(T8[A, B, C, D, E, F, G, H]) = T8[SA, SB, SC, SD, SE, SF, SG, SH],
// where each S component is the counterpart of its source component
func Register8As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH any]() error {
	return registerTuple(
		typeFor[T8[A, B, C, D, E, F, G, H]](), typeFor[T8[SA, SB, SC, SD, SE, SF, SG, SH]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()})
}

// Register9 registers T9[A, B, C, D, E, F, G, H, I] as its own counterpart. Every
// component must be self-contained.
func Register9[A, B, C, D, E, F, G, H, I any]() error {
	return Register9As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I]()
}

// Register9As registers Static(T9[A, B, C, D, E, F, G, H, I]) = T9[SA, SB, SC, SD, SE, SF, SG, SH, SI],
// where each S component is the counterpart of its source component
func Register9As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI any]() error {
	return registerTuple(
		typeFor[T9[A, B, C, D, E, F, G, H, I]](), typeFor[T9[SA, SB, SC, SD, SE, SF, SG, SH, SI]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()})
}

// Register10 registers T10[A, B, C, D, E, F, G, H, I, J] as its own counterpart. Every
// component must be self-contained.
func Register10[A, B, C, D, E, F, G, H, I, J any]() error {
	return Register10As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I, J, J]()
}

// Register10As registers Static(T10[A, B, C, D, E, F, G, H, I, J]) = T10[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ],
// where each S component is the counterpart of its source component
func Register10As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI, J, SJ any]() error {
	return registerTuple(
		typeFor[T10[A, B, C, D, E, F, G, H, I, J]](), typeFor[T10[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()},
		[2]reflect.Type{typeFor[J](), typeFor[SJ]()})
}

// Register11 registers T11[A, B, C, D, E, F, G, H, I, J, K] as its own counterpart. Every
// component must be self-contained.
func Register11[A, B, C, D, E, F, G, H, I, J, K any]() error {
	return Register11As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I, J, J, K, K]()
}

// Register11As registers Static(T11[A, B, C, D, E, F, G, H, I, J, K]) = T11[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK],
// where each S component is the counterpart of its source component
func Register11As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI, J, SJ, K, SK any]() error {
	return registerTuple(
		typeFor[T11[A, B, C, D, E, F, G, H, I, J, K]](), typeFor[T11[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()},
		[2]reflect.Type{typeFor[J](), typeFor[SJ]()},
		[2]reflect.Type{typeFor[K](), typeFor[SK]()})
}

// Register12 registers T12[A, B, C, D, E, F, G, H, I, J, K, L] as its own counterpart. Every
// component must be self-contained.
func Register12[A, B, C, D, E, F, G, H, I, J, K, L any]() error {
	return Register12As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I, J, J, K, K, L, L]()
}

// Register12As registers Static(T12[A, B, C, D, E, F, G, H, I, J, K, L]) = T12[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL],
// where each S component is the counterpart of its source component
func Register12As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI, J, SJ, K, SK, L, SL any]() error {
	return registerTuple(
		typeFor[T12[A, B, C, D, E, F, G, H, I, J, K, L]](), typeFor[T12[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()},
		[2]reflect.Type{typeFor[J](), typeFor[SJ]()},
		[2]reflect.Type{typeFor[K](), typeFor[SK]()},
		[2]reflect.Type{typeFor[L](), typeFor[SL]()})
}

// Register13 registers T13[A, B, C, D, E, F, G, H, I, J, K, L, M] as its own counterpart. Every
// component must be self-contained.
func Register13[A, B, C, D, E, F, G, H, I, J, K, L, M any]() error {
	return Register13As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I, J, J, K, K, L, L, M, M]()
}

// Register13As registers Static(T13[A, B, C, D, E, F, G, H, I, J, K, L, M]) = T13[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM],
// where each S component is the counterpart of its source component
func Register13As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI, J, SJ, K, SK, L, SL, M, SM any]() error {
	return registerTuple(
		typeFor[T13[A, B, C, D, E, F, G, H, I, J, K, L, M]](), typeFor[T13[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()},
		[2]reflect.Type{typeFor[J](), typeFor[SJ]()},
		[2]reflect.Type{typeFor[K](), typeFor[SK]()},
		[2]reflect.Type{typeFor[L](), typeFor[SL]()},
		[2]reflect.Type{typeFor[M](), typeFor[SM]()})
}

// Register14 registers T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N] as its own counterpart. Every
// component must be self-contained.
func Register14[A, B, C, D, E, F, G, H, I, J, K, L, M, N any]() error {
	return Register14As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I, J, J, K, K, L, L, M, M, N, N]()
}

// Register14As registers Static(T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) = T14[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM, SN],
// where each S component is the counterpart of its source component
func Register14As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI, J, SJ, K, SK, L, SL, M, SM, N, SN any]() error {
	return registerTuple(
		typeFor[T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]](), typeFor[T14[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM, SN]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()},
		[2]reflect.Type{typeFor[J](), typeFor[SJ]()},
		[2]reflect.Type{typeFor[K](), typeFor[SK]()},
		[2]reflect.Type{typeFor[L](), typeFor[SL]()},
		[2]reflect.Type{typeFor[M](), typeFor[SM]()},
		[2]reflect.Type{typeFor[N](), typeFor[SN]()})
}

// Register15 registers T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O] as its own counterpart. Every
// component must be self-contained.
func Register15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O any]() error {
	return Register15As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I, J, J, K, K, L, L, M, M, N, N, O, O]()
}

// Register15As registers Static(T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) = T15[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM, SN, SO],
// where each S component is the counterpart of its source component
func Register15As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI, J, SJ, K, SK, L, SL, M, SM, N, SN, O, SO any]() error {
	return registerTuple(
		typeFor[T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]](), typeFor[T15[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM, SN, SO]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()},
		[2]reflect.Type{typeFor[J](), typeFor[SJ]()},
		[2]reflect.Type{typeFor[K](), typeFor[SK]()},
		[2]reflect.Type{typeFor[L](), typeFor[SL]()},
		[2]reflect.Type{typeFor[M](), typeFor[SM]()},
		[2]reflect.Type{typeFor[N](), typeFor[SN]()},
		[2]reflect.Type{typeFor[O](), typeFor[SO]()})
}

// Register16 registers T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P] as its own counterpart. Every
// component must be self-contained.
func Register16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any]() error {
	return Register16As[A, A, B, B, C, C, D, D, E, E, F, F, G, G, H, H, I, I, J, J, K, K, L, L, M, M, N, N, O, O, P, P]()
}

// Register16As registers Static(T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) = T16[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM, SN, SO, SP],
// where each S component is the counterpart of its source component
func Register16As[A, SA, B, SB, C, SC, D, SD, E, SE, F, SF, G, SG, H, SH, I, SI, J, SJ, K, SK, L, SL, M, SM, N, SN, O, SO, P, SP any]() error {
	return registerTuple(
		typeFor[T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]](), typeFor[T16[SA, SB, SC, SD, SE, SF, SG, SH, SI, SJ, SK, SL, SM, SN, SO, SP]](),
		[2]reflect.Type{typeFor[A](), typeFor[SA]()},
		[2]reflect.Type{typeFor[B](), typeFor[SB]()},
		[2]reflect.Type{typeFor[C](), typeFor[SC]()},
		[2]reflect.Type{typeFor[D](), typeFor[SD]()},
		[2]reflect.Type{typeFor[E](), typeFor[SE]()},
		[2]reflect.Type{typeFor[F](), typeFor[SF]()},
		[2]reflect.Type{typeFor[G](), typeFor[SG]()},
		[2]reflect.Type{typeFor[H](), typeFor[SH]()},
		[2]reflect.Type{typeFor[I](), typeFor[SI]()},
		[2]reflect.Type{typeFor[J](), typeFor[SJ]()},
		[2]reflect.Type{typeFor[K](), typeFor[SK]()},
		[2]reflect.Type{typeFor[L](), typeFor[SL]()},
		[2]reflect.Type{typeFor[M](), typeFor[SM]()},
		[2]reflect.Type{typeFor[N](), typeFor[SN]()},
		[2]reflect.Type{typeFor[O](), typeFor[SO]()},
		[2]reflect.Type{typeFor[P](), typeFor[SP]()})
}
