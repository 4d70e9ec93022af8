package cli

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
)

// Scenario é o arquivo TOML de entradas do simulador, com as tabelas [funnel] e [valuation]
type Scenario struct {
	Funnel    domain.FunnelInputs    `toml:"funnel"`
	Valuation domain.ValuationInputs `toml:"valuation"`
}

// DefaultScenario retorna o cenário com os valores padrão dos controles
func DefaultScenario() Scenario {
	return Scenario{
		Funnel:    domain.DefaultFunnelInputs(),
		Valuation: domain.DefaultValuationInputs(),
	}
}

// LoadScenario lê o arquivo sobre os valores padrão, então chaves ausentes mantêm
// o padrão. Caminho vazio retorna o cenário padrão. Chaves desconhecidas são erro.
func LoadScenario(path string) (Scenario, error) {
	scenario := DefaultScenario()
	if path == "" {
		return scenario, nil
	}

	md, err := toml.DecodeFile(path, &scenario)
	if err != nil {
		return scenario, errors.Wrapf(err, "parsing scenario %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return scenario, errors.Errorf("unknown keys in scenario %s: %s", path, strings.Join(keys, ", "))
	}

	return scenario, nil
}

// SaveScenario grava o cenário em TOML
func SaveScenario(path string, scenario Scenario) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "creating scenario file")
	}

	return writeScenario(f, scenario)
}

// writeScenario codifica o cenário e fecha o destino. Falha de escrita pode
// aparecer só no Close, então o erro do Close é retornado.
func writeScenario(w io.WriteCloser, scenario Scenario) error {
	if err := toml.NewEncoder(w).Encode(scenario); err != nil {
		w.Close()
		return errors.Wrap(err, "encoding scenario")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing scenario file")
	}
	return nil
}
