package mimc_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/mimc"
)

func TestCipherVector1(t *testing.T) {
	got := mimc.Cipher(big.NewInt(1), big.NewInt(1), big.NewInt(1), field.Q, 7, 46)
	want := field.String2Int("1300849129775089134466232670907109030853384837097186821504541142364641413437")

	require.Equal(t, 0, got.Cmp(want))
}

func TestCipherVector2(t *testing.T) {
	got := mimc.Cipher(big.NewInt(1), big.NewInt(1), big.NewInt(1), field.Q, 5, 55)
	want := field.String2Int("16451571189888683738166037749717624326602724070424662292143094644958444275424")

	require.Equal(t, 0, got.Cmp(want))
}

func TestMiyaguchiPreneelVector3(t *testing.T) {
	inputs := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}

	got := mimc.MiyaguchiPreneel(inputs, big.NewInt(1), big.NewInt(1), field.Q, 7, 10)
	want := field.String2Int("15772580913570834494018056247779681195847786982073538652842589502561187453858")

	require.Equal(t, 0, got.Cmp(want))
}

func TestCipherIsDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		x := big.NewInt(int64(i + 1))

		a := mimc.Cipher(x, big.NewInt(7), big.NewInt(1), field.Q, 7, 46)
		b := mimc.Cipher(x, big.NewInt(7), big.NewInt(1), field.Q, 7, 46)

		require.Equal(t, 0, a.Cmp(b))
	}
}

func TestCipherOutputIsReduced(t *testing.T) {
	for i := 0; i < 50; i++ {
		x := big.NewInt(int64(i*31 + 3))

		got := mimc.Cipher(x, big.NewInt(1), big.NewInt(1), field.Q, 7, 46)
		require.True(t, got.Sign() >= 0)
		require.Equal(t, -1, got.Cmp(field.Q))
	}
}
