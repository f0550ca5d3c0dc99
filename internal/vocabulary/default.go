package vocabulary

// Default returns the built-in vocabulary. Keywords mix Brazilian-Portuguese
// and English merchant fragments since pasted statements come in both.
//
// Table order matters: "super" must be tested before the generic shopping
// keywords so a supermarket debit lands in Groceries, not Shopping.
func Default() *Vocabulary {
	return &Vocabulary{
		DefaultExpense: "Purchases",
		DefaultIncome:  "Other Income",
		Expense: []Category{
			{
				Name:     "Groceries",
				Bucket:   "needs",
				Keywords: []string{"super", "mercado", "mercearia", "padaria", "hortifruti", "atacad", "açougue", "grocery"},
			},
			{
				Name:     "Food & Dining",
				Bucket:   "wants",
				Keywords: []string{"ifood", "restaurante", "lanchonete", "pizzaria", "hamburgue", "cafeteria", "restaurant", "burger"},
			},
			{
				Name:     "Transport",
				Bucket:   "needs",
				Keywords: []string{"uber", "taxi", "táxi", "combust", "gasolina", "estacionamento", "pedágio", "metrô", "ônibus", "passagem"},
			},
			{
				Name:     "Housing & Utilities",
				Bucket:   "needs",
				Keywords: []string{"aluguel", "condomínio", "energia", "luz", "água", "internet", "telefone", "celular", "rent"},
			},
			{
				Name:     "Health",
				Bucket:   "needs",
				Keywords: []string{"farmácia", "farmacia", "drogaria", "hospital", "clínica", "consulta", "laboratório"},
			},
			{
				Name:     "Subscriptions & Leisure",
				Bucket:   "wants",
				Keywords: []string{"netflix", "spotify", "cinema", "steam", "playstation", "ingresso", "assinatura"},
			},
			{
				Name:     "Education",
				Bucket:   "needs",
				Keywords: []string{"curso", "escola", "faculdade", "livraria", "udemy", "alura"},
			},
			{
				Name:     "Savings & Investments",
				Bucket:   "savings",
				Keywords: []string{"aplicação", "investimento", "poupança", "cdb", "tesouro direto"},
			},
			{
				Name:     "Shopping",
				Bucket:   "wants",
				Keywords: []string{"amazon", "shopee", "magalu", "americanas", "shein", "loja"},
			},
			{
				Name:     "Purchases",
				Bucket:   "wants",
				Keywords: nil, // fallback, matched by default only
			},
		},
		Income: []Category{
			{
				Name:     "Salary",
				Keywords: []string{"salário", "salario", "folha", "payroll", "provento"},
			},
			{
				Name:     "Investment Income",
				Keywords: []string{"rendimento", "dividendo", "juros", "resgate"},
			},
			{
				Name:     "Refunds",
				Keywords: []string{"reembolso", "estorno", "cashback", "refund"},
			},
			{
				Name:     "Other Income",
				Keywords: nil,
			},
		},
	}
}
