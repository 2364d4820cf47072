package samples_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sphkit/internal/config"
	"github.com/san-kum/sphkit/internal/samples"
	"github.com/san-kum/sphkit/internal/storage"
)

var _ = Describe("Generate", func() {
	var (
		cfg *config.Config
		out *bytes.Buffer
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.OutputDir = filepath.Join(GinkgoT().TempDir(), "sample_images")
		// keep the preview small so the suite stays fast
		cfg.Preview.DPI = 30
		out = &bytes.Buffer{}
	})

	It("creates the missing directory and writes exactly five files", func() {
		_, err := os.Stat(cfg.OutputDir)
		Expect(os.IsNotExist(err)).To(BeTrue())

		paths, err := samples.Generate(cfg, out)
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(HaveLen(5))

		entries, err := os.ReadDir(cfg.OutputDir)
		Expect(err).NotTo(HaveOccurred())
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		Expect(names).To(ConsistOf(
			"spiral_galaxy.png",
			"galaxy_collision.png",
			"smiley_face.png",
			"logo_pattern.png",
			"sample_preview.png",
		))
	})

	It("returns paths in catalogue order with the preview last", func() {
		paths, err := samples.Generate(cfg, out)
		Expect(err).NotTo(HaveOccurred())

		bases := make([]string, len(paths))
		for i, p := range paths {
			bases[i] = filepath.Base(p)
		}
		Expect(bases).To(Equal([]string{
			"spiral_galaxy.png",
			"galaxy_collision.png",
			"smiley_face.png",
			"logo_pattern.png",
			samples.PreviewFile,
		}))
	})

	It("saves each image at its default size", func() {
		_, err := samples.Generate(cfg, out)
		Expect(err).NotTo(HaveOccurred())

		st := storage.New(cfg.OutputDir)
		sizes := map[string][2]int{
			"spiral_galaxy.png":    {100, 100},
			"galaxy_collision.png": {120, 80},
			"smiley_face.png":      {80, 80},
			"logo_pattern.png":     {90, 90},
		}
		for name, size := range sizes {
			img, err := st.ReadImage(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Dx()).To(Equal(size[0]), name)
			Expect(img.Bounds().Dy()).To(Equal(size[1]), name)
		}
	})

	It("crops the preview tightly inside the figure", func() {
		_, err := samples.Generate(cfg, out)
		Expect(err).NotTo(HaveOccurred())

		img, err := storage.New(cfg.OutputDir).ReadImage(samples.PreviewFile)
		Expect(err).NotTo(HaveOccurred())
		full := int(cfg.Preview.FigSize * float64(cfg.Preview.DPI))
		Expect(img.Bounds().Dx()).To(BeNumerically("<", full))
		Expect(img.Bounds().Dy()).To(BeNumerically("<", full))
		Expect(img.Bounds().Dx()).To(BeNumerically(">", full/2))
	})

	It("is idempotent over an existing directory", func() {
		_, err := samples.Generate(cfg, out)
		Expect(err).NotTo(HaveOccurred())
		_, err = samples.Generate(cfg, out)
		Expect(err).NotTo(HaveOccurred())

		names, err := storage.New(cfg.OutputDir).List()
		Expect(err).NotTo(HaveOccurred())
		Expect(names).To(HaveLen(5))
	})

	It("reports every written file", func() {
		_, err := samples.Generate(cfg, out)
		Expect(err).NotTo(HaveOccurred())

		report := out.String()
		Expect(report).To(HavePrefix("Sample images created:"))
		for _, name := range []string{"spiral_galaxy.png", "galaxy_collision.png", "smiley_face.png", "logo_pattern.png", "sample_preview.png"} {
			Expect(report).To(ContainSubstring(name))
		}
	})
})
