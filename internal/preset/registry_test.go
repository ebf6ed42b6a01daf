package preset_test

import (
	"os"
	"path/filepath"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/motionkit/internal/physics"
	"github.com/san-kum/motionkit/internal/preset"
)

var _ = Describe("Registry", func() {
	var reg *preset.Registry

	BeforeEach(func() {
		reg = preset.New()
	})

	Describe("stock presets", func() {
		It("lists them sorted", func() {
			Expect(reg.Names()).To(Equal([]string{"default", "gentle", "molasses", "slow", "stiff", "wobbly"}))
		})

		It("stores each preset under the default entry", func() {
			set, err := reg.Lookup("gentle")
			Expect(err).NotTo(HaveOccurred())
			Expect(set.Names()).To(Equal([]string{physics.DefaultName}))

			p, ok := set.Default()
			Expect(ok).To(BeTrue())
			Expect(p).To(Equal(physics.Params{Mass: 1, Stiffness: 120, Damping: 14, Friction: 0}))
		})

		It("hands out copies", func() {
			set, err := reg.Lookup("stiff")
			Expect(err).NotTo(HaveOccurred())
			set.Put("extra", physics.Params{})

			again, _ := reg.Lookup("stiff")
			Expect(again.Len()).To(Equal(1))
		})
	})

	Describe("Lookup", func() {
		It("reports unknown names", func() {
			_, err := reg.Lookup("bouncy")
			Expect(err).To(MatchError(preset.ErrUnknownPreset))
			Expect(err.Error()).To(ContainSubstring("bouncy"))
		})
	})

	Describe("Resolve", func() {
		It("normalizes non-preset configurations directly", func() {
			set, err := reg.Resolve(physics.Single{Mass: physics.Float(4)})
			Expect(err).NotTo(HaveOccurred())
			p, _ := set.Default()
			Expect(p.Mass).To(Equal(4.0))
			Expect(p.Stiffness).To(Equal(physics.DefaultStiffness))
		})

		It("keeps an empty multi configuration empty", func() {
			set, err := reg.Resolve(physics.NewMulti())
			Expect(err).NotTo(HaveOccurred())
			Expect(set.Len()).To(BeZero())
		})

		It("looks up preset names", func() {
			set, err := reg.Resolve(physics.Preset("wobbly"))
			Expect(err).NotTo(HaveOccurred())
			p, _ := set.Default()
			Expect(p.Stiffness).To(Equal(180.0))
			Expect(p.Damping).To(Equal(12.0))
		})

		It("fails for unknown preset names", func() {
			_, err := reg.Resolve(physics.Preset("nope"))
			Expect(err).To(MatchError(preset.ErrUnknownPreset))
		})
	})

	Describe("Register", func() {
		It("copies the registered set", func() {
			set := physics.NewSet()
			set.Put("open", physics.DefaultParams())
			reg.Register("panel", set)
			set.Put("close", physics.DefaultParams())

			got, err := reg.Lookup("panel")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Names()).To(Equal([]string{"open"}))
		})

		It("is safe under concurrent use", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					reg.Register("tmp", physics.NewSet())
					_, err := reg.Lookup("default")
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()
			Expect(reg.Names()).To(ContainElement("tmp"))
		})
	})

	Describe("Load", func() {
		It("registers single and multi presets", func() {
			doc := `
presets:
  bouncy: {stiffness: 300, damping: 8}
  panel:
    open: {stiffness: 200}
    close: {}
`
			Expect(reg.Load([]byte(doc))).To(Succeed())

			bouncy, err := reg.Lookup("bouncy")
			Expect(err).NotTo(HaveOccurred())
			p, _ := bouncy.Default()
			Expect(p).To(Equal(physics.Params{Mass: 1, Stiffness: 300, Damping: 8, Friction: 0}))

			panel, err := reg.Lookup("panel")
			Expect(err).NotTo(HaveOccurred())
			Expect(panel.Names()).To(Equal([]string{"open", "close"}))
		})

		It("overrides stock presets", func() {
			Expect(reg.Load([]byte("presets:\n  gentle: {mass: 3}\n"))).To(Succeed())
			set, _ := reg.Lookup("gentle")
			p, _ := set.Default()
			Expect(p.Mass).To(Equal(3.0))
			Expect(p.Stiffness).To(Equal(physics.DefaultStiffness))
		})

		It("accepts documents without presets", func() {
			Expect(reg.Load([]byte(""))).To(Succeed())
			Expect(reg.Load([]byte("presets:\n"))).To(Succeed())
			Expect(reg.Names()).To(HaveLen(6))
		})

		It("rejects presets defined by name", func() {
			err := reg.Load([]byte("presets:\n  ok: {mass: 2}\n  alias: gentle\n"))
			Expect(err).To(MatchError(preset.ErrPresetCycle))
			Expect(reg.Names()).NotTo(ContainElement("ok"))
		})

		It("rejects non-mapping presets", func() {
			Expect(reg.Load([]byte("presets: [a, b]\n"))).NotTo(Succeed())
			Expect(reg.Load([]byte("presets:\n  bad: [1, 2]\n"))).To(MatchError(physics.ErrMalformedConfig))
		})
	})

	Describe("LoadFile", func() {
		It("extends the stock registry", func() {
			path := filepath.Join(GinkgoT().TempDir(), "presets.yaml")
			Expect(os.WriteFile(path, []byte("presets:\n  snappy: {stiffness: 400}\n"), 0644)).To(Succeed())

			loaded, err := preset.LoadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Names()).To(ContainElements("default", "snappy"))
		})

		It("fails for missing files", func() {
			_, err := preset.LoadFile(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})
})
