package caching

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/shopspring/decimal"
	"github.com/zeebo/blake3"

	"github.com/advisorhub/revenue-engine/pkg/utils"
)

// encMode usa a codificação determinística do CBOR: os mesmos parâmetros
// sempre produzem os mesmos bytes
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("caching: falha ao inicializar o encoder CBOR: " + err.Error())
	}
}

type paramKind uint8

const (
	kindString paramKind = iota + 1
	kindInt
	kindBool
	kindDecimal
	kindMonth
)

// Param é um parâmetro tipado de chave. Sem nome ele é posicional e a ordem
// importa; com nome a ordem de inclusão é irrelevante.
type Param struct {
	name  string
	kind  paramKind
	value any
}

func String(name, value string) Param {
	return Param{name: name, kind: kindString, value: value}
}

func Int(name string, value int64) Param {
	return Param{name: name, kind: kindInt, value: value}
}

func Bool(name string, value bool) Param {
	return Param{name: name, kind: kindBool, value: value}
}

// Decimal usa a representação canônica em texto, nunca um float
func Decimal(name string, value decimal.Decimal) Param {
	return Param{name: name, kind: kindDecimal, value: value.String()}
}

// Month grava apenas ano/mês de t
func Month(name string, t time.Time) Param {
	return Param{name: name, kind: kindMonth, value: utils.MonthKey(t)}
}

// Key é a chave de cache de um namespace para um tenant
type Key struct {
	Namespace  Namespace
	TenantID   string
	named      []Param
	positional []Param
}

// NewKey agrupa os parâmetros nomeados (ordenados por nome) e os posicionais
// (na ordem recebida)
func NewKey(ns Namespace, tenantID string, params ...Param) Key {
	key := Key{Namespace: ns, TenantID: tenantID}
	for _, p := range params {
		if p.name == "" {
			key.positional = append(key.positional, p)
			continue
		}
		key.named = append(key.named, p)
	}

	sort.SliceStable(key.named, func(i, j int) bool {
		return key.named[i].name < key.named[j].name
	})

	return key
}

// IsDefault indica se a chave não tem parâmetros
func (k Key) IsDefault() bool {
	return len(k.named) == 0 && len(k.positional) == 0
}

type encodedParam struct {
	_     struct{} `cbor:",toarray"`
	Name  string
	Kind  paramKind
	Value any
}

type encodedKey struct {
	_          struct{} `cbor:",toarray"`
	Namespace  string
	TenantID   string
	Named      []encodedParam
	Positional []encodedParam
}

func encodeParams(params []Param) []encodedParam {
	encoded := make([]encodedParam, 0, len(params))
	for _, p := range params {
		encoded = append(encoded, encodedParam{Name: p.name, Kind: p.kind, Value: p.value})
	}
	return encoded
}

// String monta a chave final: prefixo, namespace e tenant legíveis e os
// parâmetros resumidos por hash
func (k Key) String(prefix string) string {
	base := DefaultKey(prefix, k.Namespace, k.TenantID)
	if k.IsDefault() {
		return base
	}

	payload, err := encMode.Marshal(encodedKey{
		Namespace:  string(k.Namespace),
		TenantID:   k.TenantID,
		Named:      encodeParams(k.named),
		Positional: encodeParams(k.positional),
	})
	if err != nil {
		// só tipos primitivos chegam aqui
		panic(fmt.Sprintf("caching: falha ao codificar chave: %v", err))
	}

	sum := blake3.Sum256(payload)
	return base + ":" + hex.EncodeToString(sum[:16])
}

// DefaultKey é a chave sem argumentos de um namespace
func DefaultKey(prefix string, ns Namespace, tenantID string) string {
	return joinKey(prefix, string(ns), tenantID)
}

func indexKey(prefix string, ns Namespace, tenantID string) string {
	return joinKey(prefix, "idx", string(ns), tenantID)
}

func joinKey(prefix string, parts ...string) string {
	if prefix == "" {
		return strings.Join(parts, ":")
	}
	return prefix + ":" + strings.Join(parts, ":")
}
