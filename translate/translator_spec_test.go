// This file is part of hackvm - https://github.com/db47h/hackvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package translate_test

import (
	"bytes"
	"strings"

	"github.com/db47h/hackvm/hack"
	"github.com/db47h/hackvm/translate"
	"github.com/db47h/hackvm/vmcode"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Translator", func() {
	var (
		mockCtrl *gomock.Controller
		reporter *MockReporter
		out      bytes.Buffer
		t        *translate.Translator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		reporter = NewMockReporter(mockCtrl)
		out.Reset()
		var err error
		t, err = translate.New(&out, translate.WithReporter(reporter))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("reports and skips rejected lines", func() {
		var kinds []vmcode.ErrorKind
		reporter.EXPECT().
			Report("Bad", gomock.Any()).
			Do(func(_ string, err *vmcode.Error) { kinds = append(kinds, err.Kind) }).
			Times(3)

		Expect(t.Begin(false)).To(Succeed())
		Expect(t.TranslateModule("Bad", strings.NewReader(
			"push constant 3\npush heap 1\npush constant 4\nmul\nadd\npop temp 9\n"))).To(Succeed())
		Expect(t.End()).To(Succeed())

		Expect(kinds).To(Equal([]vmcode.ErrorKind{
			vmcode.UnknownSegment,
			vmcode.UnrecognizedOpcode,
			vmcode.MalformedOperand,
		}))
		Expect(t.Skipped()).To(Equal(3))

		cpu := execute(out.String())
		Expect(cpu.Stack(256)).To(Equal([]hack.Word{7}))
	})

	It("reports error positions", func() {
		reporter.EXPECT().
			Report("Pos", gomock.Any()).
			Do(func(_ string, err *vmcode.Error) {
				Expect(err.Pos.Filename).To(Equal("Pos"))
				Expect(err.Pos.Line).To(Equal(3))
				Expect(err.Token).To(Equal("frob"))
			})
		Expect(t.TranslateModule("Pos", strings.NewReader("// header\n\nfrob\n"))).To(Succeed())
	})

	It("does not report valid modules", func() {
		reporter.EXPECT().Report(gomock.Any(), gomock.Any()).Times(0)
		Expect(t.TranslateModule("Good", strings.NewReader("push constant 1\nreturn\n"))).To(Succeed())
		Expect(t.Skipped()).To(BeZero())
	})

	It("comments each instruction", func() {
		_, err := t.Translate(vmcode.Instruction{Kind: vmcode.Push, Segment: vmcode.Local, Index: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.SplitN(out.String(), "\n", 2)[0]).To(Equal("// push local 2"))
	})

	It("shares its state between modules", func() {
		Expect(t.TranslateModule("A", strings.NewReader("eq\ncall A.f 0\n"))).To(Succeed())
		Expect(t.TranslateModule("B", strings.NewReader("lt\ngt\n"))).To(Succeed())
		Expect(t.State().Module()).To(Equal("B"))
		Expect(t.State().Branches()).To(Equal(3))
		Expect(t.State().Calls()).To(Equal(1))
	})
})
