package config

import (
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/venmorph/attestor-svc/internal/gobind"
	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

type EVM struct {
	*gobind.Venmorph
	Client          *ethclient.Client
	Transactor      *bind.TransactOpts
	ChainID         int64
	ContractAddress common.Address
	RequestTimeout  time.Duration
}

const defaultRequestTimeout = 10 * time.Second
const maxChainID int64 = math.MaxUint64/2 - 36

func (c *config) EVM() EVM {
	return c.evmOnce.Do(func() interface{} {
		var cfg struct {
			RPC            string         `fig:"rpc,required"`
			Contract       common.Address `fig:"contract,required"`
			ChainID        int64          `fig:"chain_id,required"`
			Signer         string         `fig:"signer,required"`
			RequestTimeout time.Duration  `fig:"request_timeout"`
		}

		err := figure.Out(&cfg).
			With(figure.BaseHooks, figure.EthereumHooks).
			From(kv.MustGetStringMap(c.getter, "evm")).
			Please()
		if err != nil {
			panic(errors.Wrap(err, "failed to figure out evm"))
		}

		if cfg.ChainID > maxChainID || cfg.ChainID <= 0 {
			panic("chain_id value out of range due to EIP 2294")
		}

		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Signer, "0x"))
		if err != nil {
			panic(errors.Wrap(err, "invalid attestation signing key"))
		}

		cli, err := ethclient.Dial(cfg.RPC)
		if err != nil {
			panic(errors.Wrap(err, "failed to connect to RPC provider"))
		}
		v, err := gobind.NewVenmorph(cfg.Contract, cli)
		if err != nil {
			panic(errors.Wrap(err, "failed to create contract caller"))
		}
		signer, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
		if err != nil {
			panic(errors.Wrap(err, "failed to create keyed transactor"))
		}

		if cfg.RequestTimeout == 0 {
			cfg.RequestTimeout = defaultRequestTimeout
		}

		return EVM{
			Venmorph:        v,
			Client:          cli,
			Transactor:      signer,
			ChainID:         cfg.ChainID,
			ContractAddress: cfg.Contract,
			RequestTimeout:  cfg.RequestTimeout,
		}
	}).(EVM)
}
