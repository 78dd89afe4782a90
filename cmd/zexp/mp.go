// Copyright 2026 zbynek-go-exp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kvr000/zbynek-go-exp/bench"
	"github.com/kvr000/zbynek-go-exp/cpufreq"
	"github.com/kvr000/zbynek-go-exp/multiprec"
)

func newMPCmd() *cobra.Command {
	var (
		limbs      int
		iterations int
	)
	cmd := &cobra.Command{
		Use:   "mp",
		Short: "Check and time multi-limb addition with carry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limbs <= 0 || limbs%2 != 0 {
				return errors.Errorf("--limbs must be a positive even number, got %d", limbs)
			}
			w := cmd.OutOrStdout()
			r := rand.New(rand.NewPCG(1, uint64(limbs)))
			a, b := make([]uint32, limbs), make([]uint32, limbs)
			for i := range a {
				a[i], b[i] = r.Uint32(), r.Uint32()
			}
			// An all-ones run in a makes the carry ripple through most limbs.
			for i := 1; i < limbs-1; i++ {
				a[i] = ^uint32(0)
			}

			rCmp, rWide := make([]uint32, limbs), make([]uint32, limbs)
			cCmp := multiprec.AddCompare(rCmp, a, b)
			cWide := multiprec.AddWide(rWide, a, b)
			a64, b64, r64 := multiprec.Widen(a), multiprec.Widen(b), make([]uint64, limbs/2)
			cBits := multiprec.AddBits(r64, a64, b64)
			fmt.Fprintf(w, "carry: compare=%d wide=%d bits=%d\n", cCmp, cWide, cBits)
			narrowed := multiprec.Narrow(r64)
			for i := range rCmp {
				if rCmp[i] != rWide[i] || rCmp[i] != narrowed[i] {
					return errors.Errorf("adders disagree at limb %d: compare=%#x wide=%#x bits=%#x", i, rCmp[i], rWide[i], narrowed[i])
				}
			}
			if uint64(cCmp) != cBits || uint64(cWide) != cBits {
				return errors.New("adders disagree on the carry out")
			}
			if limbs == 8 {
				sum, overflow := multiprec.Add256([4]uint64(a64), [4]uint64(b64))
				if sum != [4]uint64(r64) || overflow != (cBits == 1) {
					return errors.New("AddBits disagrees with the uint256 reference")
				}
				fmt.Fprintln(w, "uint256 reference: ok")
			}

			runner := bench.NewRunner(bench.CPUClock{Hz: uint64(cpufreq.Cached().Hz)})
			for _, res := range []bench.Result{
				runner.Run("mp_compare", iterations, limbs, func() { multiprec.AddCompare(rCmp, a, b) }),
				runner.Run("mp_wide", iterations, limbs, func() { multiprec.AddWide(rWide, a, b) }),
				runner.Run("mp_bits", iterations, limbs, func() { multiprec.AddBits(r64, a64, b64) }),
			} {
				fmt.Fprintln(w, res)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&limbs, "limbs", 8, "Number of 32-bit limbs")
	flags.IntVar(&iterations, "iterations", 64, "Calls per timed run")
	return cmd
}
