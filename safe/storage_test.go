package safe_test

import (
	"context"
	"errors"
	"strings"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/charmingruby/optres/option"
	"github.com/charmingruby/optres/safe"
	"github.com/charmingruby/optres/storage"
)

var _ = Describe("storage adapters", func() {
	var (
		ctx     context.Context
		ctrl    *gomock.Controller
		backend *safe.MockStorage
		store   *safe.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		backend = safe.NewMockStorage(ctrl)
		store = safe.NewStore("local", backend)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Get", func() {
		It("returns Some for a stored key", func() {
			backend.EXPECT().GetItem(gomock.Any(), "theme").Return("dark", true, nil)
			Expect(store.Get(ctx, "theme")).To(Equal(option.Some("dark")))
		})

		It("returns None for an absent key", func() {
			backend.EXPECT().GetItem(gomock.Any(), "theme").Return("", false, nil)
			Expect(store.Get(ctx, "theme").IsNone()).To(BeTrue())
		})

		It("keeps an empty stored value distinct from absence", func() {
			backend.EXPECT().GetItem(gomock.Any(), "theme").Return("", true, nil)
			Expect(store.Get(ctx, "theme")).To(Equal(option.Some("")))
		})

		It("returns None when the backend fails", func() {
			backend.EXPECT().GetItem(gomock.Any(), "theme").Return("", false, errors.New("disk gone"))
			Expect(store.Get(ctx, "theme").IsNone()).To(BeTrue())
		})
	})

	Context("Lookup", func() {
		It("surfaces backend failures as Err", func() {
			backend.EXPECT().GetItem(gomock.Any(), "theme").Return("", false, errors.New("disk gone"))
			res := store.Lookup(ctx, "theme")
			Expect(res.IsErr()).To(BeTrue())
			Expect(res.MustUnwrapErr()).To(MatchError(ContainSubstring("disk gone")))
		})

		It("wraps presence in Ok", func() {
			backend.EXPECT().GetItem(gomock.Any(), "theme").Return("light", true, nil)
			Expect(store.Lookup(ctx, "theme").MustUnwrap()).To(Equal(option.Some("light")))
		})
	})

	Context("GetJSON", func() {
		type prefs struct {
			Theme string `json:"theme"`
			Size  int    `json:"size"`
		}

		It("decodes the stored text", func() {
			backend.EXPECT().GetItem(gomock.Any(), "prefs").Return(`{"theme":"dark","size":14}`, true, nil)
			res := safe.GetJSON[prefs](ctx, store, "prefs")
			Expect(res.MustUnwrap()).To(Equal(prefs{Theme: "dark", Size: 14}))
		})

		It("fails with ErrNotFound for an absent key", func() {
			backend.EXPECT().GetItem(gomock.Any(), "prefs").Return("", false, nil)
			res := safe.GetJSON[prefs](ctx, store, "prefs")
			Expect(res.MustUnwrapErr()).To(MatchError(safe.ErrNotFound))
		})

		It("fails when the stored text is not JSON", func() {
			backend.EXPECT().GetItem(gomock.Any(), "prefs").Return("dark", true, nil)
			res := safe.GetJSON[prefs](ctx, store, "prefs")
			Expect(res.MustUnwrapErr()).To(MatchError(ContainSubstring("parse json")))
		})

		It("propagates backend failures", func() {
			boom := errors.New("boom")
			backend.EXPECT().GetItem(gomock.Any(), "prefs").Return("", false, boom)
			res := safe.GetJSON[prefs](ctx, store, "prefs")
			Expect(res.MustUnwrapErr()).To(MatchError(boom))
		})
	})

	Context("with real backends", func() {
		It("reads both scopes independently", func() {
			local := storage.NewMemory(8)
			session := storage.NewMemory(8)
			Expect(local.SetItem(ctx, "k", "persisted")).To(Succeed())
			Expect(session.SetItem(ctx, "k", `"transient"`)).To(Succeed())

			scopes := safe.NewStorages(local, session)
			Expect(scopes.Local.Name()).To(Equal("local"))
			Expect(scopes.Local.Get(ctx, "k")).To(Equal(option.Some("persisted")))
			Expect(safe.GetJSON[string](ctx, scopes.Session, "k").MustUnwrap()).To(Equal("transient"))
			Expect(scopes.Session.Get(ctx, "other").IsNone()).To(BeTrue())
		})

		It("counts outcomes per scope", func() {
			reg := prometheus.NewRegistry()
			m, err := safe.NewMetrics(reg)
			Expect(err).NotTo(HaveOccurred())

			mem := storage.NewMemory(8)
			Expect(mem.SetItem(ctx, "k", "v")).To(Succeed())
			s := safe.NewStore("session", mem, safe.WithMetrics(m))
			s.Get(ctx, "k")
			s.Get(ctx, "missing")

			expected := `
# HELP optres_safe_calls_total Total number of safe adapter calls by outcome
# TYPE optres_safe_calls_total counter
optres_safe_calls_total{adapter="session_get",outcome="absent"} 1
optres_safe_calls_total{adapter="session_get",outcome="ok"} 1
`
			Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "optres_safe_calls_total")).To(Succeed())
		})
	})
})
