// Validate decoder throughput - measures allocation behavior of the
// generated opcode dispatch on a realistic instruction stream.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/chiplet/nes/insts"
)

func main() {
	decoder := insts.NewDecoder()

	// Short loop body mixing one-, two-, and three-byte instructions:
	// LDA #$01; ADC $0200,X; STA $0200; DEX; BNE -9
	unit := []byte{0xa9, 0x01, 0x7d, 0x00, 0x02, 0x8d, 0x00, 0x02, 0xca, 0xd0, 0xf7}
	instsPerUnit := 5

	const units = 100000
	program := make([]byte, 0, units*len(unit))
	for i := 0; i < units; i++ {
		program = append(program, unit...)
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		if _, err := decoder.DecodeBytes(unit); err != nil {
			panic(err)
		}
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()

	r := insts.NewReader(program)
	for r.Remaining() > 0 {
		if _, err := decoder.Decode(r); err != nil {
			panic(err)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := units * instsPerUnit
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Throughput Validation Results:\n")
	fmt.Printf("========================================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	if float64(allocations)/float64(totalDecodes) <= 1.0 {
		fmt.Printf("\n✅ GOOD: At most one allocation per decoded instruction\n")
	} else {
		fmt.Printf("\n⚠️  WARNING: High allocation rate detected\n")
	}
}
