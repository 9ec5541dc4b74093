// Package datastore define o contrato do record store: a fonte dos registros
// de clientes, produtos, vendas e inventário que alimentam o snapshot em
// memória. Implementações: csvstore (arquivos do pipeline de dados) e
// postgresstore.
package datastore

import (
	"context"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

// RecordStore carrega o conjunto completo de registros de uma vez. Uma fonte
// individual ausente ou corrompida degrada para conjunto vazio; o erro só é
// retornado quando nada pôde ser carregado (ex.: diretório de dados ausente,
// banco fora do ar) — nesse caso quem chama mantém o snapshot anterior.
type RecordStore interface {
	Load(ctx context.Context) (*domain.RecordSet, error)
}
