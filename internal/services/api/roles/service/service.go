// Package service holds the role keyword directory
package service

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/modkit/repokit"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/services/api/roles/domain"
	"interviewcoach/internal/services/api/roles/repo"
)

// Service defines the roles service contract
type Service interface {
	domain.ServicePort
}

// snapshot is an immutable view of the directory; lookups never lock
type snapshot struct {
	rev    uint64
	source string
	roles  map[string][]string
	folded map[string]string // lower-cased role name -> canonical name
}

func newSnapshot(rev uint64, source string, roles map[string][]string) *snapshot {
	s := &snapshot{rev: rev, source: source, roles: roles, folded: make(map[string]string, len(roles))}
	for name := range roles {
		s.folded[strings.ToLower(name)] = name
	}
	return s
}

func (s *snapshot) lookup(role string) (string, []string, bool) {
	role = strings.TrimSpace(role)
	if kws, ok := s.roles[role]; ok {
		return role, kws, true
	}
	if name, ok := s.folded[strings.ToLower(role)]; ok {
		return name, s.roles[name], true
	}
	return "", nil, false
}

// Svc serves role keywords from an atomically swapped snapshot
type Svc struct {
	base   *lexicon.Resources
	source string
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	log    logger.Logger

	cur  atomic.Pointer[snapshot]
	revs atomic.Uint64
}

// New seeds the directory from base. With source pg and a non nil db, Reload reads role_keywords
func New(base *lexicon.Resources, source string, db repokit.TxRunner, binder repokit.Binder[repo.Repo], log logger.Logger) *Svc {
	if base == nil {
		panic("roles.Service requires non nil resources")
	}
	if source == domain.SourcePG && (db == nil || binder == nil) {
		log.Warn().Msg("roles: pg source requested without postgres, serving embedded keywords")
		source = domain.SourceEmbedded
	}
	s := &Svc{base: base, source: source, db: db, binder: binder, log: log}
	s.swap(domain.SourceEmbedded, base.Roles)
	return s
}

func (s *Svc) swap(source string, roles map[string][]string) *snapshot {
	snap := newSnapshot(s.revs.Add(1), source, roles)
	s.cur.Store(snap)
	return snap
}

// Revision changes on every reload
func (s *Svc) Revision() uint64 { return s.cur.Load().rev }

// Keywords returns a copy of the role's keywords, nil when unknown
func (s *Svc) Keywords(role string) []string {
	_, kws, ok := s.cur.Load().lookup(role)
	if !ok {
		return nil
	}
	return append([]string(nil), kws...)
}

// List returns the sorted role names
func (s *Svc) List(_ context.Context) (domain.RoleList, error) {
	snap := s.cur.Load()
	names := make([]string, 0, len(snap.roles))
	for n := range snap.roles {
		names = append(names, n)
	}
	sort.Strings(names)
	return domain.RoleList{Roles: names, Source: snap.source}, nil
}

// Get returns one role's keywords or a not found error
func (s *Svc) Get(_ context.Context, role string) (domain.RoleKeywords, error) {
	name, kws, ok := s.cur.Load().lookup(role)
	if !ok {
		return domain.RoleKeywords{}, perr.NotFoundf("unknown job role %q", role)
	}
	return domain.RoleKeywords{Role: name, Keywords: append([]string(nil), kws...)}, nil
}

// Reload rebuilds the snapshot. For the pg source an empty table is seeded from the embedded set
func (s *Svc) Reload(ctx context.Context) (domain.ReloadResult, error) {
	if s.source != domain.SourcePG {
		return result(s.swap(domain.SourceEmbedded, s.base.Roles)), nil
	}

	var roles map[string][]string
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		got, err := r.All(ctx)
		if err != nil {
			return err
		}
		if len(got) == 0 {
			for name, kws := range s.base.Roles {
				if err := r.Replace(ctx, name, kws); err != nil {
					return err
				}
			}
			got = s.base.Roles
			logger.C(ctx).Info().Int("roles", len(got)).Msg("roles: seeded role_keywords from embedded set")
		}
		roles = got
		return nil
	})
	if err != nil {
		return domain.ReloadResult{}, perr.FromPostgres(err, "reload role keywords")
	}

	return result(s.swap(domain.SourcePG, normalizeRoles(roles))), nil
}

func normalizeRoles(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for role, kws := range in {
		role = strings.TrimSpace(role)
		if role == "" {
			continue
		}
		list := make([]string, 0, len(kws))
		for _, k := range kws {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				list = append(list, k)
			}
		}
		out[role] = list
	}
	return out
}

func result(s *snapshot) domain.ReloadResult {
	n := 0
	for _, kws := range s.roles {
		n += len(kws)
	}
	return domain.ReloadResult{Roles: len(s.roles), Source: s.source, Keywords: n}
}
