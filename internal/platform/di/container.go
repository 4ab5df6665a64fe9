// internal/platform/di/container.go
package di

import (
	"context"
	"log"
	"time"

	"github.com/blocto/solana-go-sdk/client"

	httpin "github.com/rakess70/mintomatic/internal/adapters/in/http"
	httpout "github.com/rakess70/mintomatic/internal/adapters/out/http"
	usecase "github.com/rakess70/mintomatic/internal/application/usecase"
	"github.com/rakess70/mintomatic/internal/infra/config"
	"github.com/rakess70/mintomatic/internal/infra/idempotency"
	"github.com/rakess70/mintomatic/internal/infra/solana"
)

const (
	mintIntentTTL       = 2 * time.Minute
	mintSweeperInterval = 10 * time.Minute
)

// Container owns every long-lived dependency: config, the RPC client, the
// dedup store and the usecases built on top. Constructed once at startup and
// read-only afterwards.
type Container struct {
	Config *config.Config
	RPC    *client.Client

	MachineUC  *usecase.MachineUsecase
	MintUC     *usecase.MintUsecase
	ReferralUC *usecase.ReferralUsecase
	NFTUC      *usecase.NFTUsecase

	keys *idempotency.MemoryStore
}

// NewContainer wires the whole graph. A missing mint authority key does not
// fail construction; the mint endpoint reports the configuration error at
// request time instead, and the read-only endpoints keep working.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := config.Load()

	rpc := solana.NewClient(cfg.SolanaRPCURL)
	reader := solana.NewCandyMachineReader(rpc)
	metadata := httpout.NewMetadataClient()

	authority, err := solana.LoadMintAuthority(ctx, cfg.MintAuthorityKey, cfg.MintAuthorityKeySecret)
	if err != nil {
		log.Printf("[di] WARN: mint authority not loaded: %v (mint submissions will fail)", err)
		authority = nil
	}

	keys := idempotency.NewMemoryStore(mintIntentTTL)
	keys.StartSweeper(mintSweeperInterval)

	minter := solana.NewMinter(rpc, authority)

	referralSink := httpout.NewReferralRadiusClient("", cfg.ReferralRadiusAPIKey)

	c := &Container{
		Config: cfg,
		RPC:    rpc,
		keys:   keys,

		MachineUC: usecase.NewMachineUsecase(reader, metadata),
		MintUC:    usecase.NewMintUsecase(minter, keys, cfg.CandyMachineID, cfg.CollectionMintID),
		ReferralUC: usecase.NewReferralUsecase(
			referralSink,
			cfg.ReferralRadiusAPIKey != "",
			cfg.ReferralRadiusProductID,
			cfg.ReferralAmount,
		),
		NFTUC: usecase.NewNFTUsecase(reader, metadata, reader),
	}

	return c, nil
}

// RouterDeps exposes the container contents the router needs.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		Cfg:        c.Config,
		MachineUC:  c.MachineUC,
		MintUC:     c.MintUC,
		ReferralUC: c.ReferralUC,
		NFTUC:      c.NFTUC,
	}
}

// Close releases container resources: today that is only the dedup store's
// sweeper goroutine. The RPC client is plain HTTP and needs no teardown.
func (c *Container) Close() {
	if c.keys != nil {
		c.keys.StopSweeper()
	}
}
