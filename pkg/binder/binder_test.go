package binder_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/eagerbind/pkg/binder"
	"github.com/zhulik/eagerbind/pkg/container"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/tree"
	"github.com/zhulik/eagerbind/testhelpers"
)

const dbDocument = `{"app": {"db": {"host": "localhost", "port": 1234}}}`

const seedsDocument = `{"app": {"db": {"seeds": ["8.8.8.8", "8.8.4.4"], "port": 1234}}}`

func sourceOf(doc string) *tree.Source {
	return tree.NewSource(lo.Must(tree.Parse([]byte(doc))))
}

func connection(c *container.Container, hostKey, portKey string) string {
	host := container.MustGet[string](c, hostKey)
	port := container.MustGet[float64](c, portKey)

	return host + ":" + strconv.FormatFloat(port, 'f', -1, 64)
}

var _ = Describe("Binder", func() {
	var c *container.Container

	BeforeEach(func() {
		c = container.New(testhelpers.NewInjector())
	})

	Describe("New", func() {
		Context("when settings are nil", func() {
			It("applies defaults", func() {
				b := lo.Must(binder.New(sourceOf(dbDocument), nil))

				settings := b.Settings()
				Expect(settings.Root).To(BeEmpty())
				Expect(settings.Prefix).To(BeEmpty())
				Expect(settings.Log).To(BeFalse())
				Expect(settings.Objects).To(BeFalse())
				Expect(settings.TypeHints).ToNot(BeNil())
				Expect(settings.TypeHints).To(BeEmpty())
			})
		})

		Context("when root does not exist", func() {
			It("returns a configuration error", func() {
				b, err := binder.New(sourceOf(dbDocument), &binder.Settings{Root: "missing"})

				Expect(b).To(BeNil())
				Expect(err).To(MatchError(core.ErrMissingRoot))
				Expect(err).To(MatchError(core.ErrConfiguration))
				Expect(err.Error()).To(ContainSubstring("missing"))
			})
		})

		It("does not keep a reference to the caller's type hints", func() {
			hints := core.TypeHints{"cfg.db.seeds": core.TypeHintString}
			b := lo.Must(binder.New(sourceOf(seedsDocument), &binder.Settings{
				Root: "app", Prefix: "cfg", TypeHints: hints,
			}))

			hints["cfg.db.seeds"] = core.TypeHintNumber

			Expect(b.Settings().TypeHints).To(HaveKeyWithValue("cfg.db.seeds", core.TypeHintString))
		})
	})

	Describe("loading into a container", func() {
		Context("with default settings", func() {
			It("binds leaves under their full path", func() {
				b := lo.Must(binder.New(sourceOf(dbDocument), nil))

				Expect(c.Load(b.Module())).To(Succeed())

				Expect(container.MustGet[string](c, "app.db.host")).To(Equal("localhost"))
				Expect(container.MustGet[float64](c, "app.db.port")).To(Equal(float64(1234)))
				Expect(c.Keys()).To(Equal([]string{"app.db.host", "app.db.port"}))
			})
		})

		Context("with a different root", func() {
			It("binds leaves relative to the root", func() {
				b := lo.Must(binder.New(sourceOf(dbDocument), &binder.Settings{Root: "app"}))

				Expect(c.Load(b.Module())).To(Succeed())

				Expect(connection(c, "db.host", "db.port")).To(Equal("localhost:1234"))
				Expect(c.Keys()).To(Equal([]string{"db.host", "db.port"}))
			})
		})

		Context("with a custom prefix", func() {
			It("binds leaves under the prefix", func() {
				b := lo.Must(binder.New(sourceOf(dbDocument), &binder.Settings{
					Root:   "app",
					Prefix: "cfg",
					Log:    true,
				}))

				Expect(c.Load(b.Module())).To(Succeed())

				Expect(connection(c, "cfg.db.host", "cfg.db.port")).To(Equal("localhost:1234"))
				Expect(b.BindingLog()).To(Equal([]string{
					"Binding 'cfg.db.host' to string 'localhost'",
					"Binding 'cfg.db.port' to number '1234'",
				}))
			})
		})

		Context("with arrays", func() {
			It("binds hinted arrays with their element type", func() {
				b := lo.Must(binder.New(sourceOf(seedsDocument), &binder.Settings{
					Root:      "app",
					Prefix:    "cfg",
					Log:       true,
					TypeHints: core.TypeHints{"cfg.db.seeds": core.TypeHintString},
				}))

				Expect(c.Load(b.Module())).To(Succeed())

				seeds := container.MustGet[[]string](c, "cfg.db.seeds")
				port := container.MustGet[float64](c, "cfg.db.port")

				Expect(seeds).To(Equal([]string{"8.8.8.8", "8.8.4.4"}))
				Expect(port).To(Equal(float64(1234)))
				Expect(b.BindingLog()).To(Equal([]string{
					`Binding 'cfg.db.seeds' to string[] '["8.8.8.8","8.8.4.4"]'`,
					"Binding 'cfg.db.port' to number '1234'",
				}))
			})

			It("binds unhinted arrays as any[]", func() {
				b := lo.Must(binder.New(sourceOf(seedsDocument), &binder.Settings{Log: true}))

				Expect(c.Load(b.Module())).To(Succeed())

				Expect(container.MustGet[[]any](c, "app.db.seeds")).To(Equal([]any{"8.8.8.8", "8.8.4.4"}))
				Expect(b.BindingLog()[0]).To(HavePrefix("Binding 'app.db.seeds' to any[] "))
			})
		})

		Context("with objects", func() {
			It("binds every intermediate object as well", func() {
				b := lo.Must(binder.New(sourceOf(dbDocument), &binder.Settings{
					Log:     true,
					Objects: true,
				}))

				Expect(c.Load(b.Module())).To(Succeed())

				db := container.MustGet[map[string]any](c, "app.db")
				Expect(db).To(Equal(map[string]any{"host": "localhost", "port": float64(1234)}))

				Expect(c.Keys()).To(Equal([]string{"app", "app.db", "app.db.host", "app.db.port"}))
				Expect(b.BindingLog()).To(HaveLen(4))
				Expect(b.BindingLog()[1]).To(Equal(`Binding 'app.db' to Object '{"host":"localhost","port":1234}'`))
			})
		})

		Context("when loaded twice into the same container", func() {
			It("surfaces the container's duplicate error", func() {
				b := lo.Must(binder.New(sourceOf(dbDocument), nil))

				Expect(c.Load(b.Module())).To(Succeed())
				Expect(c.Load(b.Module())).ToNot(Succeed())
			})
		})

		It("can be unloaded", func() {
			b := lo.Must(binder.New(sourceOf(dbDocument), nil))
			module := b.Module()

			Expect(c.Load(module)).To(Succeed())
			Expect(c.Unload(module)).To(Succeed())
			Expect(c.Keys()).To(BeEmpty())
		})
	})
})
