package configsource_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/eagerbind/pkg/configsource"
	"github.com/zhulik/eagerbind/pkg/tree"
)

func writeFile(dir, name, content string) {
	lo.Must0(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func get(source *tree.Source, path string) any {
	return lo.Must(source.Get(path))
}

var _ = Describe("Load", func() {
	var dir string
	var env map[string]string
	var opts configsource.Options

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		env = map[string]string{}

		opts = configsource.Options{
			Dir:         dir,
			Environment: "test",
			LookupEnv: func(key string) (string, bool) {
				value, ok := env[key]

				return value, ok
			},
		}

		writeFile(dir, "default.json", `{"app": {"db": {"host": "localhost", "port": 1234, "seeds": ["8.8.8.8", "8.8.4.4"]}, "name": "demo"}}`)
	})

	Context("when only defaults exist", func() {
		It("loads them", func() {
			source := lo.Must(configsource.Load(opts))

			Expect(get(source, "app.db.host")).To(Equal("localhost"))
			Expect(get(source, "app.db.port")).To(Equal(float64(1234)))
			Expect(source.Root().Keys()).To(Equal([]string{"app"}))
		})
	})

	Context("when layered files exist", func() {
		BeforeEach(func() {
			writeFile(dir, "default.yaml", "app:\n  db:\n    user: admin\n")
			writeFile(dir, "test.yml", "app:\n  db:\n    host: test-db\n")
			writeFile(dir, "production.json", `{"app": {"db": {"host": "prod-db"}}}`)
			writeFile(dir, "local.json", `{"app": {"name": "local"}}`)
			writeFile(dir, "local-test.yaml", "app:\n  db:\n    seeds: [1.1.1.1]\n")
		})

		It("merges them in order", func() {
			source := lo.Must(configsource.Load(opts))

			Expect(get(source, "app.db.user")).To(Equal("admin"))
			Expect(get(source, "app.db.host")).To(Equal("test-db"))
			Expect(get(source, "app.name")).To(Equal("local"))
			Expect(get(source, "app.db.seeds")).To(Equal([]any{"1.1.1.1"}))
			Expect(get(source, "app.db.port")).To(Equal(float64(1234)))
		})
	})

	Context("when custom environment variables are mapped", func() {
		BeforeEach(func() {
			writeFile(dir, "custom-environment-variables.yaml", `
app:
  db:
    host: DB_HOST
    port:
      __name: DB_PORT
      __format: json
    password: DB_PASSWORD
`)
		})

		It("overrides values with set variables only", func() {
			env["DB_HOST"] = "env-db"
			env["DB_PORT"] = "5432"
			env["DB_PASSWORD"] = ""

			source := lo.Must(configsource.Load(opts))

			Expect(get(source, "app.db.host")).To(Equal("env-db"))
			Expect(get(source, "app.db.port")).To(Equal(float64(5432)))
			Expect(source.Has("app.db.password")).To(BeFalse())
		})
	})

	Context("when a JSON override is given", func() {
		It("is applied last", func() {
			writeFile(dir, "custom-environment-variables.json", `{"app": {"name": "APP_NAME"}}`)
			env["APP_NAME"] = "from-env"
			opts.JSON = `{"app": {"name": "from-json"}}`

			source := lo.Must(configsource.Load(opts))

			Expect(get(source, "app.name")).To(Equal("from-json"))
		})

		It("fails when it is not an object", func() {
			opts.JSON = `[1, 2]`

			_, err := configsource.Load(opts)

			Expect(err).To(MatchError(tree.ErrNotAnObject))
		})
	})

	Context("when directory does not exist", func() {
		It("returns an empty source", func() {
			opts.Dir = filepath.Join(dir, "missing")

			source := lo.Must(configsource.Load(opts))

			Expect(source.Root().Len()).To(BeZero())
		})
	})

	Context("when a file is broken", func() {
		It("returns an error", func() {
			writeFile(dir, "test.json", `{"app": `)

			_, err := configsource.Load(opts)

			Expect(err).To(HaveOccurred())
		})
	})

	Context("when options are invalid", func() {
		It("returns a validation error", func() {
			_, err := configsource.Load(configsource.Options{})

			Expect(err).To(MatchError(configsource.ErrValidationFailed))
		})
	})
})
