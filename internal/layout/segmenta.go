package layout

// Byte-range table for the Segment A detail record, shared by the remittance
// builder tests and the return-file parser. Offsets are 0-indexed with
// exclusive ends; the CNAB240 manual numbers the same columns 1-indexed
// inclusive.
var (
	FieldBankCode       = Field{"banco", 0, 3}
	FieldBatch          = Field{"lote", 3, 7}
	FieldRecordType     = Field{"tipo_registro", 7, 8}
	FieldSequence       = Field{"sequencial", 8, 13}
	FieldSegment        = Field{"segmento", 13, 14}
	FieldMovementType   = Field{"tipo_movimento", 14, 15}
	FieldMovementCode   = Field{"instrucao_movimento", 15, 17}
	FieldClearingHouse  = Field{"camara", 17, 20}
	FieldBeneficiary    = Field{"favorecido", 20, 73}
	FieldCompanyDoc     = Field{"doc_empresa", 73, 93}
	FieldPaymentDate    = Field{"data_pagamento", 93, 101}
	FieldCurrency       = Field{"moeda", 101, 104}
	FieldCurrencyQty    = Field{"qtde_moeda", 104, 119}
	FieldNominalValue   = Field{"valor_nominal", 119, 134}
	FieldBankDoc        = Field{"doc_banco", 134, 154}
	FieldEffectiveDate  = Field{"data_efetivacao", 154, 162}
	FieldEffectiveValue = Field{"valor_efetivacao", 162, 177}
	FieldFillerA        = Field{"branco_1", 177, 199}
	FieldAccountType    = Field{"tipo_conta", 199, 201}
	FieldFillerB        = Field{"branco_2", 201, 219}
	FieldFinality       = Field{"finalidade", 219, 224}
	FieldFillerC        = Field{"branco_3", 224, 230}
	FieldOccurrences    = Field{"ocorrencias", 230, 240}
)

// Sub-ranges of the 53-character beneficiary block, valid only when the
// payment carries bank-account details (key type 05).
var (
	FieldFavBank      = Field{"fav_banco", 20, 23}
	FieldFavBranch    = Field{"fav_agencia", 23, 28}
	FieldFavBranchDV  = Field{"fav_agencia_dv", 28, 29}
	FieldFavAccount   = Field{"fav_conta", 29, 41}
	FieldFavAccountDV = Field{"fav_conta_dv", 41, 42}
	FieldFavName      = Field{"fav_nome", 43, 73}
)

// SegmentA lists every top-level Segment A field in file order. The table is
// exercised by tests that prove the ranges tile [0, 240) without gaps or
// overlap, which pins the offset contract independently of the builders.
var SegmentA = []Field{
	FieldBankCode,
	FieldBatch,
	FieldRecordType,
	FieldSequence,
	FieldSegment,
	FieldMovementType,
	FieldMovementCode,
	FieldClearingHouse,
	FieldBeneficiary,
	FieldCompanyDoc,
	FieldPaymentDate,
	FieldCurrency,
	FieldCurrencyQty,
	FieldNominalValue,
	FieldBankDoc,
	FieldEffectiveDate,
	FieldEffectiveValue,
	FieldFillerA,
	FieldAccountType,
	FieldFillerB,
	FieldFinality,
	FieldFillerC,
	FieldOccurrences,
}
