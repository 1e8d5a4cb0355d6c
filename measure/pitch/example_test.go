package pitch_test

import (
	"fmt"

	"github.com/tnn1t1s/rcy/dsp/signal"
	"github.com/tnn1t1s/rcy/measure/pitch"
)

func ExampleDominantFrequency() {
	tone, err := signal.Sine(440, 0.8, 48000, 4096)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	freq, err := pitch.DominantFrequency(tone, 48000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.0f Hz\n", freq)
	// Output:
	// 440 Hz
}
