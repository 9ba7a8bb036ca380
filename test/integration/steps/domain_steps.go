package steps

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/cucumber/godog"
)

// produtoPayload accumulates a product request across builder steps before it
// is submitted as a create or update.
type produtoPayload struct {
	Nome          string              `json:"nome"`
	Rendimento    float64             `json:"rendimento"`
	MargemLucro   float64             `json:"margem_lucro"`
	PrecoManual   *float64            `json:"preco_manual,omitempty"`
	TempoProducao *float64            `json:"tempo_producao,omitempty"`
	Insumos       []recipeLinePayload `json:"insumos"`
}

type recipeLinePayload struct {
	InsumoID        string  `json:"insumo_id"`
	QuantidadeUsada float64 `json:"quantidade_usada"`
}

func registerDomainSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Step(`^I have an insumo "([^"]*)" of ([0-9.]+) "([^"]*)" costing ([0-9.]+)$`, tc.iHaveAnInsumo)
	ctx.Step(`^I have an (active|inactive) cost "([^"]*)" of type "([^"]*)" worth ([0-9.]+)$`, tc.iHaveACost)

	ctx.Step(`^a produto "([^"]*)" with rendimento ([0-9.]+) and margem ([0-9.]+)$`, tc.aProdutoWith)
	ctx.Step(`^the produto takes ([0-9.]+) minutes to produce$`, tc.theProdutoTakesMinutes)
	ctx.Step(`^the produto has preco manual ([0-9.]+)$`, tc.theProdutoHasPrecoManual)
	ctx.Step(`^the produto uses ([0-9.]+) of "([^"]*)"$`, tc.theProdutoUses)
	ctx.Step(`^I create the produto$`, tc.iCreateTheProduto)
	ctx.Step(`^I submit the produto as an update of "([^"]*)"$`, tc.iSubmitTheProdutoAsAnUpdateOf)

	ctx.Step(`^I send a PUT request for insumo "([^"]*)" with body:$`, tc.iSendAPutRequestForInsumo)
	ctx.Step(`^I send a PUT request for custo "([^"]*)" with body:$`, tc.iSendAPutRequestForCusto)

	ctx.Step(`^I fetch the produto "([^"]*)"$`, tc.iFetchTheProduto)
	ctx.Step(`^I delete the produto "([^"]*)"$`, tc.iDeleteTheProduto)
	ctx.Step(`^I delete the insumo "([^"]*)"$`, tc.iDeleteTheInsumo)

	ctx.Step(`^I request the priced catalog$`, tc.iRequestThePricedCatalog)
	ctx.Step(`^I request the pricing of produto "([^"]*)"$`, tc.iRequestThePricingOfProduto)

	ctx.Step(`^the catalog should list (\d+) produtos$`, tc.theCatalogShouldListProdutos)
	ctx.Step(`^the catalog order should be "([^"]*)"$`, tc.theCatalogOrderShouldBe)
	ctx.Step(`^produto "([^"]*)" in the catalog should have "([^"]*)" close to ([0-9.-]+)$`, tc.produtoInCatalogShouldHaveCloseTo)
	ctx.Step(`^the pricing field "([^"]*)" should be close to ([0-9.-]+)$`, tc.thePricingFieldShouldBeCloseTo)
}

func (tc *TestContext) iHaveAnInsumo(nome, quantidade, unidade, preco string) error {
	qtd, err := strconv.ParseFloat(quantidade, 64)
	if err != nil {
		return err
	}
	body, err := json.Marshal(map[string]interface{}{
		"nome":              nome,
		"unidade_compra":    unidade,
		"quantidade_compra": qtd,
		"preco_compra":      preco,
	})
	if err != nil {
		return err
	}
	if err := tc.doRequest("POST", "/api/v1/insumos", body); err != nil {
		return err
	}
	if tc.lastStatus != 201 {
		return fmt.Errorf("failed to seed insumo %q: status %d (body: %s)", nome, tc.lastStatus, tc.lastBody)
	}
	id, err := tc.responseField("id")
	if err != nil {
		return err
	}
	tc.insumoIDs[nome] = fmt.Sprintf("%v", id)
	return nil
}

func (tc *TestContext) iHaveACost(state, nome, tipo, valor string) error {
	body, err := json.Marshal(map[string]interface{}{
		"nome":  nome,
		"tipo":  tipo,
		"valor": valor,
		"ativo": state == "active",
	})
	if err != nil {
		return err
	}
	if err := tc.doRequest("POST", "/api/v1/custos", body); err != nil {
		return err
	}
	if tc.lastStatus != 201 {
		return fmt.Errorf("failed to seed custo %q: status %d (body: %s)", nome, tc.lastStatus, tc.lastBody)
	}
	id, err := tc.responseField("id")
	if err != nil {
		return err
	}
	tc.custoIDs[nome] = fmt.Sprintf("%v", id)
	return nil
}

func (tc *TestContext) aProdutoWith(nome, rendimento, margem string) error {
	r, err := strconv.ParseFloat(rendimento, 64)
	if err != nil {
		return err
	}
	m, err := strconv.ParseFloat(margem, 64)
	if err != nil {
		return err
	}
	tc.pendingProduto = &produtoPayload{
		Nome:        nome,
		Rendimento:  r,
		MargemLucro: m,
		Insumos:     []recipeLinePayload{},
	}
	return nil
}

func (tc *TestContext) theProdutoTakesMinutes(minutos string) error {
	if tc.pendingProduto == nil {
		return fmt.Errorf("no pending produto")
	}
	v, err := strconv.ParseFloat(minutos, 64)
	if err != nil {
		return err
	}
	tc.pendingProduto.TempoProducao = &v
	return nil
}

func (tc *TestContext) theProdutoHasPrecoManual(preco string) error {
	if tc.pendingProduto == nil {
		return fmt.Errorf("no pending produto")
	}
	v, err := strconv.ParseFloat(preco, 64)
	if err != nil {
		return err
	}
	tc.pendingProduto.PrecoManual = &v
	return nil
}

func (tc *TestContext) theProdutoUses(quantidade, insumoNome string) error {
	if tc.pendingProduto == nil {
		return fmt.Errorf("no pending produto")
	}
	id, ok := tc.insumoIDs[insumoNome]
	if !ok {
		return fmt.Errorf("unknown insumo %q, seed it first", insumoNome)
	}
	qtd, err := strconv.ParseFloat(quantidade, 64)
	if err != nil {
		return err
	}
	tc.pendingProduto.Insumos = append(tc.pendingProduto.Insumos, recipeLinePayload{
		InsumoID:        id,
		QuantidadeUsada: qtd,
	})
	return nil
}

func (tc *TestContext) iCreateTheProduto() error {
	if tc.pendingProduto == nil {
		return fmt.Errorf("no pending produto")
	}
	body, err := json.Marshal(tc.pendingProduto)
	if err != nil {
		return err
	}
	nome := tc.pendingProduto.Nome
	tc.pendingProduto = nil

	if err := tc.doRequest("POST", "/api/v1/produtos", body); err != nil {
		return err
	}
	if tc.lastStatus == 201 {
		if id, err := tc.responseField("id"); err == nil {
			tc.produtoIDs[nome] = fmt.Sprintf("%v", id)
		}
	}
	return nil
}

func (tc *TestContext) iSubmitTheProdutoAsAnUpdateOf(nome string) error {
	if tc.pendingProduto == nil {
		return fmt.Errorf("no pending produto")
	}
	id, ok := tc.produtoIDs[nome]
	if !ok {
		return fmt.Errorf("unknown produto %q, create it first", nome)
	}
	body, err := json.Marshal(tc.pendingProduto)
	if err != nil {
		return err
	}
	tc.pendingProduto = nil
	return tc.doRequest("PUT", "/api/v1/produtos/"+id, body)
}

func (tc *TestContext) iSendAPutRequestForInsumo(nome string, body *godog.DocString) error {
	id, ok := tc.insumoIDs[nome]
	if !ok {
		return fmt.Errorf("unknown insumo %q", nome)
	}
	return tc.doRequest("PUT", "/api/v1/insumos/"+id, []byte(body.Content))
}

func (tc *TestContext) iSendAPutRequestForCusto(nome string, body *godog.DocString) error {
	id, ok := tc.custoIDs[nome]
	if !ok {
		return fmt.Errorf("unknown custo %q", nome)
	}
	return tc.doRequest("PUT", "/api/v1/custos/"+id, []byte(body.Content))
}

func (tc *TestContext) iFetchTheProduto(nome string) error {
	id, ok := tc.produtoIDs[nome]
	if !ok {
		return fmt.Errorf("unknown produto %q", nome)
	}
	return tc.doRequest("GET", "/api/v1/produtos/"+id, nil)
}

func (tc *TestContext) iDeleteTheProduto(nome string) error {
	id, ok := tc.produtoIDs[nome]
	if !ok {
		return fmt.Errorf("unknown produto %q", nome)
	}
	return tc.doRequest("DELETE", "/api/v1/produtos/"+id, nil)
}

func (tc *TestContext) iDeleteTheInsumo(nome string) error {
	id, ok := tc.insumoIDs[nome]
	if !ok {
		return fmt.Errorf("unknown insumo %q", nome)
	}
	return tc.doRequest("DELETE", "/api/v1/insumos/"+id, nil)
}

func (tc *TestContext) iRequestThePricedCatalog() error {
	return tc.doRequest("GET", "/api/v1/precificacao", nil)
}

func (tc *TestContext) iRequestThePricingOfProduto(nome string) error {
	id, ok := tc.produtoIDs[nome]
	if !ok {
		return fmt.Errorf("unknown produto %q", nome)
	}
	return tc.doRequest("GET", "/api/v1/precificacao/"+id, nil)
}

func (tc *TestContext) theCatalogShouldListProdutos(count int) error {
	produtos, err := tc.catalogProdutos()
	if err != nil {
		return err
	}
	if len(produtos) != count {
		return fmt.Errorf("expected %d produtos in catalog, got %d", count, len(produtos))
	}
	return nil
}

func (tc *TestContext) theCatalogOrderShouldBe(expected string) error {
	produtos, err := tc.catalogProdutos()
	if err != nil {
		return err
	}
	var got string
	for i, p := range produtos {
		if i > 0 {
			got += ", "
		}
		got += fmt.Sprintf("%v", p["nome"])
	}
	if got != expected {
		return fmt.Errorf("expected catalog order %q, got %q", expected, got)
	}
	return nil
}

func (tc *TestContext) produtoInCatalogShouldHaveCloseTo(nome, field, expected string) error {
	produtos, err := tc.catalogProdutos()
	if err != nil {
		return err
	}
	for _, p := range produtos {
		if fmt.Sprintf("%v", p["nome"]) == nome {
			return assertCloseTo(field, p[field], expected)
		}
	}
	return fmt.Errorf("produto %q not found in catalog (body: %s)", nome, tc.lastBody)
}

func (tc *TestContext) thePricingFieldShouldBeCloseTo(field, expected string) error {
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	return assertCloseTo(field, value, expected)
}

func (tc *TestContext) catalogProdutos() ([]map[string]interface{}, error) {
	value, err := tc.responseField("produtos")
	if err != nil {
		return nil, err
	}
	list, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("produtos is not a list: %T", value)
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		p, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("catalog entry is not an object: %T", item)
		}
		out = append(out, p)
	}
	return out, nil
}

// assertCloseTo compares a monetary field, which arrives as a decimal string,
// against an expected value with a small tolerance. Division by the minutes in
// an hour leaves precision artifacts an exact comparison would trip over.
func assertCloseTo(field string, value interface{}, expected string) error {
	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return fmt.Errorf("invalid expected value %q: %w", expected, err)
	}

	var got float64
	switch v := value.(type) {
	case string:
		got, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("field %q is not numeric: %q", field, v)
		}
	case float64:
		got = v
	default:
		return fmt.Errorf("field %q has unexpected type %T", field, value)
	}

	if math.Abs(got-want) > 1e-6 {
		return fmt.Errorf("expected field %q close to %v, got %v", field, want, got)
	}
	return nil
}
