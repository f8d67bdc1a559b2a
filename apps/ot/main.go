//
// main.go
//
// Copyright (c) 2026 kobakaku
//
// All rights reserved.
//

// Command ot runs one 1-out-of-2 oblivious transfer between an
// in-process sender and receiver and prints a phase timing report.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/markkurossi/tabulate"

	"github.com/kobakaku/oblivious-transfer/ot"
)

var (
	keyBits = flag.Int("bits", 1024, "modulus size in bits")
	bit     = flag.Int("choice", 0, "receiver's choice bit")
)

type sample struct {
	label string
	d     time.Duration
	xfer  int
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	choice, err := ot.FromBit(*bit)
	if err != nil {
		log.Fatal(err)
	}

	m0 := []byte("Hello Alice!")
	m1 := []byte("Hello Bob!!")
	if args := flag.Args(); len(args) == 2 {
		m0 = []byte(args[0])
		m1 = []byte(args[1])
	}
	fmt.Printf("  Sender m0 : %s\n", m0)
	fmt.Printf("  Sender m1 : %s\n", m1)

	cipher := ot.NewRSACipher()
	receiver := ot.NewReceiver(cipher, choice, *keyBits)
	sender := ot.NewSender(cipher, m0, m1)

	var samples []sample

	start := time.Now()
	keys, err := receiver.GeneratePublicKeys()
	if err != nil {
		log.Fatal(err)
	}
	samples = append(samples, sample{
		label: "GeneratePublicKeys",
		d:     time.Since(start),
		xfer:  keys.PK0.Size() + keys.PK1.Size() + 8,
	})

	start = time.Now()
	response, err := sender.EncryptMessages(keys)
	if err != nil {
		log.Fatal(err)
	}
	samples = append(samples, sample{
		label: "EncryptMessages",
		d:     time.Since(start),
		xfer:  len(response.C0) + len(response.C1),
	})

	start = time.Now()
	m, err := receiver.DecryptMessage(response)
	if err != nil {
		log.Fatal(err)
	}
	samples = append(samples, sample{
		label: "DecryptMessage",
		d:     time.Since(start),
	})

	fmt.Printf("Receiver m%d : %s\n", choice.Bit(), m)

	expected := m0
	if choice == ot.One {
		expected = m1
	}
	if !bytes.Equal(m, expected) {
		fmt.Printf("Verify failed!\n")
		os.Exit(1)
	}

	printTiming(samples)
}

func printTiming(samples []sample) {
	var total time.Duration
	for _, s := range samples {
		total += s.d
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Phase").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Xfer").SetAlign(tabulate.MR)

	for _, s := range samples {
		row := tab.Row()
		row.Column(s.label)
		row.Column(s.d.String())
		row.Column(fmt.Sprintf("%.2f%%", float64(s.d)/float64(total)*100))
		if s.xfer > 0 {
			row.Column(fmt.Sprintf("%dB", s.xfer))
		} else {
			row.Column("")
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)

	tab.Print(os.Stdout)
}
